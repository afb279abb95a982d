package dynsql

import (
	"testing"
)

func TestDelete(t *testing.T) {
	schema := testSchema(t)
	people := schema.T("people")
	id := schema.C(people, "id")

	t.Run("Delete with where", func(t *testing.T) {
		criteria := Where(IsEq(id, 3)).MustBuild()
		support, err := Delete(people).Where(criteria).Build()
		if err != nil {
			t.Fatalf("Build() unexpected error: %v", err)
		}
		if support.Table != "people" {
			t.Errorf("Expected table 'people', got '%s'", support.Table)
		}
		if support.WhereClause != "WHERE id = ?" {
			t.Errorf("Unexpected WHERE clause: '%s'", support.WhereClause)
		}
		if support.Statement() != "DELETE FROM people WHERE id = ?" {
			t.Errorf("Unexpected statement: '%s'", support.Statement())
		}
		if len(support.Params) != 1 || support.Params[0].Value != 3 {
			t.Errorf("Expected single parameter 3, got %v", support.Params.Args())
		}
	})

	t.Run("No where deletes every row", func(t *testing.T) {
		support, err := Delete(people).Build()
		if err != nil {
			t.Fatalf("Build() unexpected error: %v", err)
		}
		if support.WhereClause != "" {
			t.Errorf("Expected no WHERE clause, got '%s'", support.WhereClause)
		}
		if support.Statement() != "DELETE FROM people" {
			t.Errorf("Unexpected statement: '%s'", support.Statement())
		}
	})

	t.Run("Alias never honored", func(t *testing.T) {
		aliased := schema.T("people", "p")
		criteria := Where(IsEq(schema.C(aliased, "id"), 1)).MustBuild()
		support, err := Delete(aliased).Where(criteria).Build()
		if err != nil {
			t.Fatalf("Build() unexpected error: %v", err)
		}
		if support.Table != "people" {
			t.Errorf("Expected bare table 'people', got '%s'", support.Table)
		}
		if support.WhereClause != "WHERE id = ?" {
			t.Errorf("Expected unqualified column in WHERE, got '%s'", support.WhereClause)
		}
	})

	t.Run("No table", func(t *testing.T) {
		_, err := Delete(Table{}).Build()
		if err == nil {
			t.Error("Expected error for DELETE without table")
		}
	})

	t.Run("SQL Server dialect", func(t *testing.T) {
		criteria := Where(IsIn(id, 1, 2)).MustBuild()
		support, err := Delete(people).Where(criteria).Dialect(SQLServer).Build()
		if err != nil {
			t.Fatalf("Build() unexpected error: %v", err)
		}
		if support.WhereClause != "WHERE id IN (@p1, @p2)" {
			t.Errorf("Unexpected WHERE clause: '%s'", support.WhereClause)
		}
	})
}
