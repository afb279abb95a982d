package dynsql

import (
	"fmt"
	"strings"
)

// SelectBuilder assembles a SELECT statement support. SELECT is the only
// statement kind that honors table aliases, in column references, the
// FROM clause, and ORDER BY alike.
type SelectBuilder struct {
	table    Table
	columns  []Column
	ordering []OrderBy
	where    Criteria
	dialect  Dialect
	distinct bool
	err      error
}

// Select creates a new SELECT assembler for the table.
func Select(t Table) *SelectBuilder {
	return &SelectBuilder{table: t}
}

// Columns sets the ordered column list.
func (b *SelectBuilder) Columns(cols ...Column) *SelectBuilder {
	if b.err != nil {
		return b
	}
	for _, c := range cols {
		if c.Name == "" {
			b.err = fmt.Errorf("SELECT column has no name")
			return b
		}
	}
	b.columns = append(b.columns, cols...)
	return b
}

// Distinct sets the DISTINCT flag.
func (b *SelectBuilder) Distinct() *SelectBuilder {
	if b.err != nil {
		return b
	}
	b.distinct = true
	return b
}

// Where sets the built condition list. An empty or nil list renders no
// WHERE clause.
func (b *SelectBuilder) Where(criteria Criteria) *SelectBuilder {
	if b.err != nil {
		return b
	}
	b.where = criteria
	return b
}

// OrderBy appends ordering columns in declaration order.
func (b *SelectBuilder) OrderBy(orders ...OrderBy) *SelectBuilder {
	if b.err != nil {
		return b
	}
	b.ordering = append(b.ordering, orders...)
	return b
}

// Dialect sets the placeholder style.
func (b *SelectBuilder) Dialect(d Dialect) *SelectBuilder {
	if b.err != nil {
		return b
	}
	b.dialect = d
	return b
}

// Build renders the statement fragments and the merged parameter set.
func (b *SelectBuilder) Build() (*SelectSupport, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.table.Name == "" {
		return nil, fmt.Errorf("target table is required")
	}
	if len(b.columns) == 0 {
		return nil, fmt.Errorf("SELECT requires at least one column")
	}

	ctx := &renderContext{dialect: b.dialect, aliased: true}

	cols := make([]string, len(b.columns))
	for i, c := range b.columns {
		cols[i] = ctx.column(c)
	}

	whereClause, err := renderWhereClause(b.where, ctx)
	if err != nil {
		return nil, err
	}

	distinct := ""
	if b.distinct {
		distinct = "DISTINCT"
	}

	return &SelectSupport{
		Distinct:      distinct,
		ColumnList:    strings.Join(cols, ", "),
		Table:         ctx.table(b.table),
		WhereClause:   whereClause,
		OrderByClause: renderOrderBy(b.ordering, ctx),
		Params:        ctx.params,
	}, nil
}

// renderOrderBy renders "ORDER BY ..." text, or the empty string when no
// ordering was requested.
func renderOrderBy(ordering []OrderBy, ctx *renderContext) string {
	if len(ordering) == 0 {
		return ""
	}
	parts := make([]string, len(ordering))
	for i, o := range ordering {
		part := ctx.column(o.Column)
		if o.Descending {
			part += " DESC"
		}
		parts[i] = part
	}
	return "ORDER BY " + strings.Join(parts, ", ")
}

// Asc marks a column for ascending order.
func Asc(c Column) OrderBy {
	return OrderBy{Column: c}
}

// Desc marks a column for descending order.
func Desc(c Column) OrderBy {
	return OrderBy{Column: c, Descending: true}
}
