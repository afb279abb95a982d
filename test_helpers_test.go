package dynsql

import (
	"testing"

	"github.com/zoobzio/dbml"
)

// testSchema builds the schema registry shared by the unit tests.
func testSchema(t *testing.T) *Schema {
	t.Helper()

	project := dbml.NewProject("test")

	people := dbml.NewTable("people")
	people.AddColumn(dbml.NewColumn("id", "int"))
	people.AddColumn(dbml.NewColumn("first_name", "varchar"))
	people.AddColumn(dbml.NewColumn("last_name", "varchar"))
	people.AddColumn(dbml.NewColumn("employed", "boolean"))
	people.AddColumn(dbml.NewColumn("occupation", "varchar"))
	project.AddTable(people)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("person_id", "int"))
	orders.AddColumn(dbml.NewColumn("total", "decimal"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	project.AddTable(orders)

	schema, err := NewSchema(project)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return schema
}
