package types

// Connector records how a condition attaches to its left sibling in a
// flattened condition list. The first condition in any list carries
// ConnNone; the renderer ignores the stored connector of a first element.
type Connector string

const (
	ConnNone Connector = ""
	ConnAnd  Connector = "AND"
	ConnOr   Connector = "OR"
)

// ConditionItem represents either a single criterion or a parenthesized
// group of criteria.
type ConditionItem interface {
	IsConditionItem()
}

// Criterion is one leaf test: column, operator, and its bound operand
// values. Operand counts follow the operator's arity. A non-nil Custom
// overrides Operator with a caller-supplied SQL fragment.
type Criterion struct {
	Column    Column
	Operator  Operator
	Custom    *CustomOperator
	Values    []any
	Connector Connector
}

// CriteriaGroup is a parenthesized nested condition list. Its inner
// sequence follows the same rules as a top-level list.
type CriteriaGroup struct {
	Connector Connector
	Criteria  []ConditionItem
}

// Implement ConditionItem interface.
func (Criterion) IsConditionItem()     {}
func (CriteriaGroup) IsConditionItem() {}

// Criteria is a built, immutable top-level condition list. An empty list
// is valid and renders to an empty WHERE slot.
type Criteria []ConditionItem

// Empty reports whether the list holds no conditions.
func (c Criteria) Empty() bool {
	return len(c) == 0
}

// OrderBy marks one ordering column, optionally descending.
type OrderBy struct {
	Column     Column
	Descending bool
}
