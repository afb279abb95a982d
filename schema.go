package dynsql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/dbml"

	"github.com/zuojunyuan/mybatis-dynamic-sql/internal/types"
)

// Schema is an immutable registry of tables and columns built from a DBML
// project. It is the only source of Table and Column descriptors: every
// identifier that reaches rendered SQL has been validated here, which is
// what keeps bare-name rendering injection-safe.
//
// Build one Schema at definition time and share it; descriptors it hands
// out are plain values, safe for concurrent use.
type Schema struct {
	tables  map[string]*dbml.Table
	columns map[string]map[string]*dbml.Column // table -> column name -> column
}

// NewSchema creates a schema registry from a DBML project.
func NewSchema(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]*dbml.Column),
	}

	for _, table := range project.Tables {
		if !isValidSQLIdentifier(table.Name) {
			return nil, fmt.Errorf("invalid table name: %q", table.Name)
		}
		s.tables[table.Name] = table
		cols := make(map[string]*dbml.Column, len(table.Columns))
		for _, col := range table.Columns {
			if !isValidSQLIdentifier(col.Name) {
				return nil, fmt.Errorf("invalid column name %q in table %q", col.Name, table.Name)
			}
			cols[col.Name] = col
		}
		s.columns[table.Name] = cols
	}

	return s, nil
}

// TryT creates a validated table reference, returning an error if invalid.
// An optional alias must be a single lowercase letter; it is honored only
// when rendering SELECT statements.
func (s *Schema) TryT(name string, alias ...string) (types.Table, error) {
	if _, ok := s.tables[name]; !ok {
		return types.Table{}, fmt.Errorf("invalid table: %q not found in schema", name)
	}

	t := types.Table{Name: name}
	if len(alias) > 0 {
		if len(alias) > 1 {
			return types.Table{}, fmt.Errorf("only one alias allowed")
		}
		if !isValidTableAlias(alias[0]) {
			return types.Table{}, fmt.Errorf("table alias must be single lowercase letter (a-z), got: %s", alias[0])
		}
		t.Alias = alias[0]
	}
	return t, nil
}

// T creates a validated table reference.
func (s *Schema) T(name string, alias ...string) types.Table {
	t, err := s.TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return t
}

// TryC creates a validated column reference, returning an error if invalid.
// The column carries the table reference (including its alias) and the
// value type declared in the schema.
func (s *Schema) TryC(t types.Table, name string) (types.Column, error) {
	cols, ok := s.columns[t.Name]
	if !ok {
		return types.Column{}, fmt.Errorf("invalid column: table %q not found in schema", t.Name)
	}
	col, ok := cols[name]
	if !ok {
		return types.Column{}, fmt.Errorf("invalid column: %q not found in table %q", name, t.Name)
	}
	return types.Column{
		Name:    name,
		Table:   t,
		TypeTag: col.Type,
	}, nil
}

// C creates a validated column reference.
func (s *Schema) C(t types.Table, name string) types.Column {
	c, err := s.TryC(t, name)
	if err != nil {
		panic(err)
	}
	return c
}

// isValidTableAlias checks if a string is a valid single-letter table alias.
func isValidTableAlias(alias string) bool {
	return len(alias) == 1 && alias[0] >= 'a' && alias[0] <= 'z'
}

// Only allows alphanumeric characters and underscores, must start with a
// letter or underscore.
func isValidSQLIdentifier(s string) bool {
	if s == "" {
		return false
	}

	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}

	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}

	// Check for SQL injection patterns
	lower := strings.ToLower(s)

	suspiciousPatterns := []string{
		";", "--", "/*", "*/", "'", "\"", "`", "\\",
		" or ", " and ", "drop table", "delete from",
		"insert into", "update set", "select ",
		"union all", "union select",
	}

	for _, pattern := range suspiciousPatterns {
		if strings.Contains(lower, pattern) {
			return false
		}
	}

	return !strings.Contains(s, " ")
}
