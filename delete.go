package dynsql

import "fmt"

// DeleteBuilder assembles a DELETE statement support. Table aliasing is
// never honored: the table renders as its bare name.
type DeleteBuilder struct {
	table   Table
	where   Criteria
	dialect Dialect
	err     error
}

// Delete creates a new DELETE assembler for the table.
func Delete(t Table) *DeleteBuilder {
	return &DeleteBuilder{table: t}
}

// Where sets the built condition list. An empty or nil list renders no
// WHERE clause, which deletes every row.
func (b *DeleteBuilder) Where(criteria Criteria) *DeleteBuilder {
	if b.err != nil {
		return b
	}
	b.where = criteria
	return b
}

// Dialect sets the placeholder style.
func (b *DeleteBuilder) Dialect(d Dialect) *DeleteBuilder {
	if b.err != nil {
		return b
	}
	b.dialect = d
	return b
}

// Build renders the WHERE fragment and the parameter set.
func (b *DeleteBuilder) Build() (*DeleteSupport, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.table.Name == "" {
		return nil, fmt.Errorf("target table is required")
	}

	ctx := &renderContext{dialect: b.dialect}

	whereClause, err := renderWhereClause(b.where, ctx)
	if err != nil {
		return nil, err
	}

	return &DeleteSupport{
		Table:       b.table.Name,
		WhereClause: whereClause,
		Params:      ctx.params,
	}, nil
}
