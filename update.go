package dynsql

import (
	"fmt"
	"strings"
)

// UpdateBuilder assembles an UPDATE statement support. SET assignments
// render in the order they were added, followed by the WHERE fragment;
// both clauses mint parameter names from one shared counter so the merged
// map is collision-free. Table aliasing is never honored.
type UpdateBuilder struct {
	table     Table
	sets      []columnValue
	where     Criteria
	dialect   Dialect
	selective bool
	err       error
}

// Update creates a new UPDATE assembler for the table.
func Update(t Table) *UpdateBuilder {
	return &UpdateBuilder{table: t}
}

// Set adds one column assignment. A nil value means SQL NULL.
func (b *UpdateBuilder) Set(col Column, v any) *UpdateBuilder {
	if b.err != nil {
		return b
	}
	if col.Name == "" {
		b.err = fmt.Errorf("UPDATE column has no name")
		return b
	}
	for _, cv := range b.sets {
		if cv.col.Name == col.Name {
			b.err = fmt.Errorf("column %s already has an assignment", col.Name)
			return b
		}
	}
	if err := checkAssignable(col, v); err != nil {
		b.err = err
		return b
	}
	b.sets = append(b.sets, columnValue{col: col, value: v})
	return b
}

// Selective switches to selective mode: nil-valued assignments are
// omitted from the SET clause instead of bound to NULL.
func (b *UpdateBuilder) Selective() *UpdateBuilder {
	if b.err != nil {
		return b
	}
	b.selective = true
	return b
}

// Where sets the built condition list.
func (b *UpdateBuilder) Where(criteria Criteria) *UpdateBuilder {
	if b.err != nil {
		return b
	}
	b.where = criteria
	return b
}

// Dialect sets the placeholder style.
func (b *UpdateBuilder) Dialect(d Dialect) *UpdateBuilder {
	if b.err != nil {
		return b
	}
	b.dialect = d
	return b
}

// Build renders the SET and WHERE fragments and the merged parameter set.
func (b *UpdateBuilder) Build() (*UpdateSupport, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.table.Name == "" {
		return nil, fmt.Errorf("target table is required")
	}
	if len(b.sets) == 0 {
		return nil, fmt.Errorf("UPDATE requires at least one SET column")
	}

	ctx := &renderContext{dialect: b.dialect}

	var assignments []string
	for _, cv := range b.sets {
		if b.selective && cv.value == nil {
			continue
		}
		assignments = append(assignments, cv.col.Name+" = "+ctx.bind(cv.value))
	}
	if len(assignments) == 0 {
		return nil, fmt.Errorf("selective UPDATE has no non-null assignments")
	}

	whereClause, err := renderWhereClause(b.where, ctx)
	if err != nil {
		return nil, err
	}

	return &UpdateSupport{
		Table:       b.table.Name,
		SetClause:   "SET " + strings.Join(assignments, ", "),
		WhereClause: whereClause,
		Params:      ctx.params,
	}, nil
}
