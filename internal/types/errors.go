package types

import "errors"

var (
	// ErrMalformedCondition reports an operand count or operand type that
	// does not match the operator's contract. Raised at build time and
	// re-checked defensively at render time.
	ErrMalformedCondition = errors.New("malformed condition")

	// ErrUnsupportedOperator reports an operator tag with no entry in the
	// operator table. Indicates a programming or extension error.
	ErrUnsupportedOperator = errors.New("unsupported operator")
)
