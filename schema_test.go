package dynsql

import (
	"testing"

	"github.com/zoobzio/dbml"
)

func TestNewSchema(t *testing.T) {
	t.Run("Nil project", func(t *testing.T) {
		_, err := NewSchema(nil)
		if err == nil {
			t.Error("Expected error for nil project")
		}
	})

	t.Run("Valid project", func(t *testing.T) {
		schema := testSchema(t)
		if schema == nil {
			t.Fatal("Expected schema instance")
		}
	})

	t.Run("Rejects unsafe table name", func(t *testing.T) {
		project := dbml.NewProject("bad")
		evil := dbml.NewTable("people; DROP TABLE people")
		evil.AddColumn(dbml.NewColumn("id", "int"))
		project.AddTable(evil)

		_, err := NewSchema(project)
		if err == nil {
			t.Error("Expected error for unsafe table name")
		}
	})

	t.Run("Rejects unsafe column name", func(t *testing.T) {
		project := dbml.NewProject("bad")
		tbl := dbml.NewTable("people")
		tbl.AddColumn(dbml.NewColumn("id--", "int"))
		project.AddTable(tbl)

		_, err := NewSchema(project)
		if err == nil {
			t.Error("Expected error for unsafe column name")
		}
	})
}

func TestSchemaTable(t *testing.T) {
	schema := testSchema(t)

	t.Run("Known table", func(t *testing.T) {
		tbl, err := schema.TryT("people")
		if err != nil {
			t.Fatalf("TryT() unexpected error: %v", err)
		}
		if tbl.Name != "people" {
			t.Errorf("Expected table name 'people', got '%s'", tbl.Name)
		}
		if tbl.Alias != "" {
			t.Errorf("Expected no alias, got '%s'", tbl.Alias)
		}
	})

	t.Run("Unknown table", func(t *testing.T) {
		_, err := schema.TryT("missing")
		if err == nil {
			t.Error("Expected error for unknown table")
		}
	})

	t.Run("Valid alias", func(t *testing.T) {
		tbl := schema.T("people", "p")
		if tbl.Alias != "p" {
			t.Errorf("Expected alias 'p', got '%s'", tbl.Alias)
		}
	})

	t.Run("Invalid alias", func(t *testing.T) {
		_, err := schema.TryT("people", "PP")
		if err == nil {
			t.Error("Expected error for multi-letter alias")
		}
	})

	t.Run("Multiple aliases", func(t *testing.T) {
		_, err := schema.TryT("people", "p", "q")
		if err == nil {
			t.Error("Expected error for multiple aliases")
		}
	})

	t.Run("T panics on unknown table", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected T() to panic for unknown table")
			}
		}()
		schema.T("missing")
	})
}

func TestSchemaColumn(t *testing.T) {
	schema := testSchema(t)
	people := schema.T("people")

	t.Run("Known column", func(t *testing.T) {
		col, err := schema.TryC(people, "first_name")
		if err != nil {
			t.Fatalf("TryC() unexpected error: %v", err)
		}
		if col.Name != "first_name" {
			t.Errorf("Expected column name 'first_name', got '%s'", col.Name)
		}
		if col.Table.Name != "people" {
			t.Errorf("Expected owning table 'people', got '%s'", col.Table.Name)
		}
	})

	t.Run("Column carries type tag", func(t *testing.T) {
		col := schema.C(people, "id")
		if col.TypeTag != "int" {
			t.Errorf("Expected type tag 'int', got '%s'", col.TypeTag)
		}
	})

	t.Run("Column carries table alias", func(t *testing.T) {
		aliased := schema.T("people", "p")
		col := schema.C(aliased, "id")
		if col.Table.Alias != "p" {
			t.Errorf("Expected table alias 'p', got '%s'", col.Table.Alias)
		}
	})

	t.Run("Unknown column", func(t *testing.T) {
		_, err := schema.TryC(people, "missing")
		if err == nil {
			t.Error("Expected error for unknown column")
		}
	})

	t.Run("Unknown table on column lookup", func(t *testing.T) {
		_, err := schema.TryC(Table{Name: "missing"}, "id")
		if err == nil {
			t.Error("Expected error for unknown table")
		}
	})
}
