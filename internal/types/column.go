package types

// Column identifies one queryable column: its name, the table it belongs to,
// and the value type declared by the schema. Columns are immutable and safe
// to share across all statements built from them.
type Column struct {
	Name    string
	Table   Table
	TypeTag string // declared value type from the schema, "" when unknown
	NoAlias bool   // opt out of alias qualification even where aliases apply
}

// GetName returns the column name.
func (c Column) GetName() string {
	return c.Name
}

// GetTable returns the owning table reference.
func (c Column) GetTable() Table {
	return c.Table
}
