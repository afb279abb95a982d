package dynsql

import (
	"errors"
	"testing"
)

func TestInsert(t *testing.T) {
	schema := testSchema(t)
	people := schema.T("people")
	id := schema.C(people, "id")
	first := schema.C(people, "first_name")
	occupation := schema.C(people, "occupation")

	t.Run("Full insert", func(t *testing.T) {
		support, err := Insert(people).
			Value(id, 1).
			Value(first, "Fred").
			Value(occupation, nil).
			Build()
		if err != nil {
			t.Fatalf("Build() unexpected error: %v", err)
		}
		if support.ColumnsClause != "(id, first_name, occupation)" {
			t.Errorf("Unexpected columns clause: '%s'", support.ColumnsClause)
		}
		if support.ValuesClause != "(?, ?, ?)" {
			t.Errorf("Unexpected values clause: '%s'", support.ValuesClause)
		}
		expected := "INSERT INTO people (id, first_name, occupation) VALUES (?, ?, ?)"
		if support.Statement() != expected {
			t.Errorf("Expected '%s', got '%s'", expected, support.Statement())
		}
		args := support.Params.Args()
		if len(args) != 3 || args[0] != 1 || args[1] != "Fred" || args[2] != nil {
			t.Errorf("Unexpected args: %v", args)
		}
	})

	t.Run("Selective insert omits nil columns", func(t *testing.T) {
		support, err := Insert(people).
			Value(id, 1).
			Value(first, "Fred").
			Value(occupation, nil).
			Selective().
			Build()
		if err != nil {
			t.Fatalf("Build() unexpected error: %v", err)
		}
		if support.ColumnsClause != "(id, first_name)" {
			t.Errorf("Unexpected columns clause: '%s'", support.ColumnsClause)
		}
		if support.ValuesClause != "(?, ?)" {
			t.Errorf("Unexpected values clause: '%s'", support.ValuesClause)
		}
		if len(support.Params) != 2 {
			t.Errorf("Expected 2 parameters, got %d", len(support.Params))
		}
	})

	t.Run("Alias never honored", func(t *testing.T) {
		aliased := schema.T("people", "p")
		support, err := Insert(aliased).
			Value(schema.C(aliased, "id"), 1).
			Build()
		if err != nil {
			t.Fatalf("Build() unexpected error: %v", err)
		}
		if support.Table != "people" {
			t.Errorf("Expected bare table 'people', got '%s'", support.Table)
		}
		if support.ColumnsClause != "(id)" {
			t.Errorf("Expected unqualified column, got '%s'", support.ColumnsClause)
		}
	})

	t.Run("Selective with only nil values", func(t *testing.T) {
		_, err := Insert(people).
			Value(occupation, nil).
			Selective().
			Build()
		if err == nil {
			t.Error("Expected error when selective mode omits every column")
		}
	})

	t.Run("Duplicate column", func(t *testing.T) {
		_, err := Insert(people).
			Value(id, 1).
			Value(id, 2).
			Build()
		if err == nil {
			t.Error("Expected error for duplicate column")
		}
	})

	t.Run("Value type mismatch", func(t *testing.T) {
		_, err := Insert(people).
			Value(id, "not a number").
			Build()
		if !errors.Is(err, ErrMalformedCondition) {
			t.Errorf("Expected ErrMalformedCondition, got %v", err)
		}
	})

	t.Run("No values", func(t *testing.T) {
		_, err := Insert(people).Build()
		if err == nil {
			t.Error("Expected error for INSERT without values")
		}
	})
}
