package types

import "strings"

// BoundParam is one minted parameter name with the value bound to it.
// Values are passed through untransformed.
type BoundParam struct {
	Name  string
	Value any
}

// ParamSet is the ordered parameter list of a rendered fragment. Names
// follow the pattern p<N> with N strictly increasing within one fragment.
type ParamSet []BoundParam

// Map returns the name-to-value mapping.
func (ps ParamSet) Map() map[string]any {
	m := make(map[string]any, len(ps))
	for _, p := range ps {
		m[p.Name] = p.Value
	}
	return m
}

// Args returns the bound values in placeholder order, for positional
// binding with database/sql.
func (ps ParamSet) Args() []any {
	args := make([]any, len(ps))
	for i, p := range ps {
		args[i] = p.Value
	}
	return args
}

// Names returns the minted parameter names in placeholder order.
func (ps ParamSet) Names() []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}

// RenderedFragment is SQL text with positional placeholders plus the
// parameters it binds. Immutable once produced; safe to reuse.
type RenderedFragment struct {
	SQL    string
	Params ParamSet
}

// WhereSupport carries a rendered WHERE fragment. WhereClause is
// "WHERE ..." or the empty string when the condition list was empty;
// the keyword is never emitted with an empty body.
type WhereSupport struct {
	WhereClause string
	Params      ParamSet
}

// SelectSupport carries the independently retrievable fragments of a
// SELECT statement plus the merged parameter set.
type SelectSupport struct {
	Distinct      string // "DISTINCT" or ""
	ColumnList    string
	Table         string // FROM reference, alias-qualified
	WhereClause   string
	OrderByClause string
	Params        ParamSet
}

// Statement assembles the full SELECT statement from the fragments.
func (s *SelectSupport) Statement() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	if s.Distinct != "" {
		sb.WriteString(s.Distinct)
		sb.WriteString(" ")
	}
	sb.WriteString(s.ColumnList)
	sb.WriteString(" FROM ")
	sb.WriteString(s.Table)
	if s.WhereClause != "" {
		sb.WriteString(" ")
		sb.WriteString(s.WhereClause)
	}
	if s.OrderByClause != "" {
		sb.WriteString(" ")
		sb.WriteString(s.OrderByClause)
	}
	return sb.String()
}

// InsertSupport carries the column and placeholder lists of an INSERT.
// Both clauses include their surrounding parentheses.
type InsertSupport struct {
	Table         string
	ColumnsClause string // "(a, b)"
	ValuesClause  string // "(?, ?)"
	Params        ParamSet
}

// Statement assembles the full INSERT statement from the fragments.
func (s *InsertSupport) Statement() string {
	return "INSERT INTO " + s.Table + " " + s.ColumnsClause + " VALUES " + s.ValuesClause
}

// UpdateSupport carries the SET and WHERE fragments of an UPDATE. The
// parameter set spans both clauses, minted from one shared counter.
type UpdateSupport struct {
	Table       string
	SetClause   string // "SET a = ?, b = ?"
	WhereClause string
	Params      ParamSet
}

// Statement assembles the full UPDATE statement from the fragments.
func (s *UpdateSupport) Statement() string {
	stmt := "UPDATE " + s.Table + " " + s.SetClause
	if s.WhereClause != "" {
		stmt += " " + s.WhereClause
	}
	return stmt
}

// DeleteSupport carries the WHERE fragment of a DELETE. Table aliasing is
// never honored; Table is the bare table name.
type DeleteSupport struct {
	Table       string
	WhereClause string
	Params      ParamSet
}

// Statement assembles the full DELETE statement from the fragments.
func (s *DeleteSupport) Statement() string {
	stmt := "DELETE FROM " + s.Table
	if s.WhereClause != "" {
		stmt += " " + s.WhereClause
	}
	return stmt
}
