// Package dynsql generates dynamic SQL fragments: WHERE clauses and full
// statement bodies, plus the ordered parameter map to bind them safely.
//
// Callers describe tables and columns once through a schema registry, build
// an immutable condition tree with a fluent builder, and hand the tree to a
// statement assembler. The assembler renders SQL text with positional
// placeholders and mints collision-free parameter names (p1, p2, ...) for
// every bound value.
//
// # Basic Usage
//
//	schema, err := dynsql.NewSchema(project) // *dbml.Project
//	if err != nil {
//		return err
//	}
//
//	people := schema.T("people")
//	id := schema.C(people, "id")
//	occupation := schema.C(people, "occupation")
//
//	criteria, err := dynsql.Where(dynsql.IsEq(id, 3)).
//		Or(dynsql.Null(occupation)).
//		Build()
//	if err != nil {
//		return err
//	}
//
//	support, err := dynsql.Select(people).
//		Columns(id, occupation).
//		Where(criteria).
//		OrderBy(dynsql.Asc(id)).
//		Build()
//	// support.WhereClause: WHERE id = ? OR occupation IS NULL
//	// support.Params:      p1=3
//
// # Fragments
//
// Each support value exposes its fragments (distinct, column list, where
// clause, order by clause, set clause) as independently retrievable strings
// for template interpolation, and a Statement method that assembles the
// complete statement. Parameter values are available in placeholder order
// via Params.Args for database/sql, or by name via Params.Map.
//
// # Dialects
//
// The default placeholder style is "?" (MySQL, SQLite). Postgres ($1) and
// SQL Server (@p1) styles are available per assembler. Parameter names are
// always p<N> regardless of dialect.
//
// # Concurrency
//
// Tables, columns, built criteria, and supports are immutable values; every
// render call is independent and reentrant. The placeholder counter is
// local to a single build, never shared.
package dynsql

import "github.com/zuojunyuan/mybatis-dynamic-sql/internal/types"

// Core value types, re-exported from internal/types for consumers.
type (
	// Table represents a validated table reference.
	Table = types.Table

	// Column identifies a queryable column within a Table.
	Column = types.Column

	// Operator represents a comparison operator.
	Operator = types.Operator

	// Arity classifies how many operand values an operator consumes.
	Arity = types.Arity

	// CustomOperator carries a caller-supplied SQL fragment plus its arity.
	CustomOperator = types.CustomOperator

	// Connector joins a condition to its left sibling (AND/OR/NONE).
	Connector = types.Connector

	// Criterion is a single column-operator-operands test.
	Criterion = types.Criterion

	// CriteriaGroup is a parenthesized nested condition list.
	CriteriaGroup = types.CriteriaGroup

	// ConditionItem is either a Criterion or a CriteriaGroup.
	ConditionItem = types.ConditionItem

	// Criteria is a built, immutable condition list.
	Criteria = types.Criteria

	// OrderBy marks one ordering column, optionally descending.
	OrderBy = types.OrderBy

	// BoundParam is one minted parameter name with its bound value.
	BoundParam = types.BoundParam

	// ParamSet is the ordered parameter list of a rendered fragment.
	ParamSet = types.ParamSet

	// RenderedFragment is SQL text plus the parameters it binds.
	RenderedFragment = types.RenderedFragment

	// WhereSupport carries a rendered WHERE fragment.
	WhereSupport = types.WhereSupport

	// SelectSupport carries the fragments of a SELECT statement.
	SelectSupport = types.SelectSupport

	// InsertSupport carries the fragments of an INSERT statement.
	InsertSupport = types.InsertSupport

	// UpdateSupport carries the fragments of an UPDATE statement.
	UpdateSupport = types.UpdateSupport

	// DeleteSupport carries the fragments of a DELETE statement.
	DeleteSupport = types.DeleteSupport
)

// Re-export operator constants for public API.
const (
	// Basic comparison operators.
	EQ = types.EQ
	NE = types.NE
	GT = types.GT
	GE = types.GE
	LT = types.LT
	LE = types.LE

	// Extended operators.
	LIKE       = types.LIKE
	NotLike    = types.NotLike
	IN         = types.IN
	NotIn      = types.NotIn
	Between    = types.Between
	NotBetween = types.NotBetween
	IsNull     = types.IsNull
	IsNotNull  = types.IsNotNull
)

// Re-export connector constants for public API.
const (
	ConnNone = types.ConnNone
	ConnAnd  = types.ConnAnd
	ConnOr   = types.ConnOr
)

// Re-export arity constants for public API.
const (
	ArityNone = types.ArityNone
	ArityOne  = types.ArityOne
	ArityPair = types.ArityPair
	ArityList = types.ArityList
)

// Re-export error sentinels for public API.
var (
	ErrMalformedCondition  = types.ErrMalformedCondition
	ErrUnsupportedOperator = types.ErrUnsupportedOperator
)
