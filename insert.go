package dynsql

import (
	"fmt"
	"strings"
)

// columnValue is one column-to-value assignment, in declaration order.
type columnValue struct {
	col   Column
	value any
}

// InsertBuilder assembles an INSERT statement support. Values render in
// the order they were added. In selective mode, nil-valued columns are
// omitted entirely from both the column list and the placeholder list; in
// full mode they are rendered and bound to NULL.
type InsertBuilder struct {
	table     Table
	values    []columnValue
	dialect   Dialect
	selective bool
	err       error
}

// Insert creates a new INSERT assembler for the table.
func Insert(t Table) *InsertBuilder {
	return &InsertBuilder{table: t}
}

// Value adds one column-value pair. A nil value means SQL NULL.
func (b *InsertBuilder) Value(col Column, v any) *InsertBuilder {
	if b.err != nil {
		return b
	}
	if col.Name == "" {
		b.err = fmt.Errorf("INSERT column has no name")
		return b
	}
	for _, cv := range b.values {
		if cv.col.Name == col.Name {
			b.err = fmt.Errorf("column %s already has a value", col.Name)
			return b
		}
	}
	if err := checkAssignable(col, v); err != nil {
		b.err = err
		return b
	}
	b.values = append(b.values, columnValue{col: col, value: v})
	return b
}

// Selective switches to selective mode: nil-valued columns are omitted
// instead of bound to NULL.
func (b *InsertBuilder) Selective() *InsertBuilder {
	if b.err != nil {
		return b
	}
	b.selective = true
	return b
}

// Dialect sets the placeholder style.
func (b *InsertBuilder) Dialect(d Dialect) *InsertBuilder {
	if b.err != nil {
		return b
	}
	b.dialect = d
	return b
}

// Build renders the column and placeholder lists and the parameter set.
// INSERT never honors table aliasing and has no WHERE clause.
func (b *InsertBuilder) Build() (*InsertSupport, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.table.Name == "" {
		return nil, fmt.Errorf("target table is required")
	}
	if len(b.values) == 0 {
		return nil, fmt.Errorf("INSERT requires at least one column value")
	}

	ctx := &renderContext{dialect: b.dialect}

	var cols, placeholders []string
	for _, cv := range b.values {
		if b.selective && cv.value == nil {
			continue
		}
		cols = append(cols, cv.col.Name)
		placeholders = append(placeholders, ctx.bind(cv.value))
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("selective INSERT has no non-null column values")
	}

	return &InsertSupport{
		Table:         b.table.Name,
		ColumnsClause: "(" + strings.Join(cols, ", ") + ")",
		ValuesClause:  "(" + strings.Join(placeholders, ", ") + ")",
		Params:        ctx.params,
	}, nil
}
