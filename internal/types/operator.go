package types

// Operator represents a comparison operator. The value is the SQL text
// emitted between the column reference and its placeholder(s).
type Operator string

const (
	// Basic comparison operators.
	EQ Operator = "="
	NE Operator = "<>"
	GT Operator = ">"
	GE Operator = ">="
	LT Operator = "<"
	LE Operator = "<="

	// Extended operators.
	LIKE       Operator = "LIKE"
	NotLike    Operator = "NOT LIKE"
	IN         Operator = "IN"
	NotIn      Operator = "NOT IN"
	Between    Operator = "BETWEEN"
	NotBetween Operator = "NOT BETWEEN"
	IsNull     Operator = "IS NULL"
	IsNotNull  Operator = "IS NOT NULL"
)

// Arity classifies how many operand values an operator consumes.
type Arity int

const (
	ArityNone Arity = iota // IS NULL, IS NOT NULL
	ArityOne               // =, <>, LIKE, ...
	ArityPair              // BETWEEN x AND y
	ArityList              // IN (...), at least one operand
)

// operatorArity is the closed operand-count table for the built-in operators.
var operatorArity = map[Operator]Arity{
	EQ:         ArityOne,
	NE:         ArityOne,
	GT:         ArityOne,
	GE:         ArityOne,
	LT:         ArityOne,
	LE:         ArityOne,
	LIKE:       ArityOne,
	NotLike:    ArityOne,
	IN:         ArityList,
	NotIn:      ArityList,
	Between:    ArityPair,
	NotBetween: ArityPair,
	IsNull:     ArityNone,
	IsNotNull:  ArityNone,
}

// Arity returns the operand count class for the operator, and whether the
// operator is known to the table at all.
func (op Operator) Arity() (Arity, bool) {
	a, ok := operatorArity[op]
	return a, ok
}

// CustomOperator carries a caller-supplied SQL fragment plus its arity,
// for operators outside the built-in table. The fragment is rendered in
// the same position as a built-in operator's SQL text.
type CustomOperator struct {
	SQL   string
	Arity Arity
}
