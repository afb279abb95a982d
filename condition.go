package dynsql

import (
	"fmt"
	"strings"
	"time"
)

// TryC creates a criterion, validating the operator's arity contract and
// the operand values against the column's declared type.
func TryC(col Column, op Operator, values ...any) (Criterion, error) {
	ar, ok := op.Arity()
	if !ok {
		return Criterion{}, fmt.Errorf("%w: %q", ErrUnsupportedOperator, op)
	}
	if err := checkOperands(col, ar, values); err != nil {
		return Criterion{}, err
	}
	return Criterion{Column: col, Operator: op, Values: values}, nil
}

// C creates a criterion.
func C(col Column, op Operator, values ...any) Criterion {
	c, err := TryC(col, op, values...)
	if err != nil {
		panic(err)
	}
	return c
}

// IsEq creates a "column = value" criterion.
func IsEq(col Column, v any) Criterion { return C(col, EQ, v) }

// IsNotEq creates a "column <> value" criterion.
func IsNotEq(col Column, v any) Criterion { return C(col, NE, v) }

// IsGt creates a "column > value" criterion.
func IsGt(col Column, v any) Criterion { return C(col, GT, v) }

// IsGe creates a "column >= value" criterion.
func IsGe(col Column, v any) Criterion { return C(col, GE, v) }

// IsLt creates a "column < value" criterion.
func IsLt(col Column, v any) Criterion { return C(col, LT, v) }

// IsLe creates a "column <= value" criterion.
func IsLe(col Column, v any) Criterion { return C(col, LE, v) }

// IsLike creates a "column LIKE value" criterion.
func IsLike(col Column, v any) Criterion { return C(col, LIKE, v) }

// IsNotLike creates a "column NOT LIKE value" criterion.
func IsNotLike(col Column, v any) Criterion { return C(col, NotLike, v) }

// TryIn creates a set-membership criterion; it requires at least one value.
func TryIn(col Column, values ...any) (Criterion, error) {
	return TryC(col, IN, values...)
}

// IsIn creates a "column IN (...)" criterion.
func IsIn(col Column, values ...any) Criterion { return C(col, IN, values...) }

// IsNotIn creates a "column NOT IN (...)" criterion.
func IsNotIn(col Column, values ...any) Criterion { return C(col, NotIn, values...) }

// TryBetween creates a range criterion; it requires exactly two bounds.
func TryBetween(col Column, bounds ...any) (Criterion, error) {
	return TryC(col, Between, bounds...)
}

// IsBetween creates a "column BETWEEN lo AND hi" criterion.
func IsBetween(col Column, lo, hi any) Criterion { return C(col, Between, lo, hi) }

// IsNotBetween creates a "column NOT BETWEEN lo AND hi" criterion.
func IsNotBetween(col Column, lo, hi any) Criterion { return C(col, NotBetween, lo, hi) }

// Null creates a "column IS NULL" criterion.
func Null(col Column) Criterion { return C(col, IsNull) }

// NotNull creates a "column IS NOT NULL" criterion.
func NotNull(col Column) Criterion { return C(col, IsNotNull) }

// TryCustom creates a criterion with a caller-supplied operator fragment,
// returning an error if the fragment or operand count is invalid.
func TryCustom(col Column, op CustomOperator, values ...any) (Criterion, error) {
	if op.SQL == "" {
		return Criterion{}, fmt.Errorf("%w: custom operator has empty SQL fragment", ErrMalformedCondition)
	}
	if err := checkOperands(col, op.Arity, values); err != nil {
		return Criterion{}, err
	}
	custom := op
	return Criterion{Column: col, Custom: &custom, Values: values}, nil
}

// Custom creates a criterion with a caller-supplied operator fragment.
func Custom(col Column, op CustomOperator, values ...any) Criterion {
	c, err := TryCustom(col, op, values...)
	if err != nil {
		panic(err)
	}
	return c
}

// checkOperands enforces the arity contract and operand typing for one
// criterion's value list.
func checkOperands(col Column, ar Arity, values []any) error {
	if err := checkArity(ar, len(values)); err != nil {
		return err
	}
	for _, v := range values {
		if v == nil {
			return fmt.Errorf("%w: nil operand for column %s (use Null/NotNull)", ErrMalformedCondition, col.Name)
		}
		if err := checkAssignable(col, v); err != nil {
			return err
		}
	}
	return nil
}

// checkArity verifies an operand count against an arity class.
func checkArity(ar Arity, n int) error {
	switch ar {
	case ArityNone:
		if n != 0 {
			return fmt.Errorf("%w: unary operator takes no operands, got %d", ErrMalformedCondition, n)
		}
	case ArityOne:
		if n != 1 {
			return fmt.Errorf("%w: operator requires exactly 1 operand, got %d", ErrMalformedCondition, n)
		}
	case ArityPair:
		if n != 2 {
			return fmt.Errorf("%w: range operator requires exactly 2 operands, got %d", ErrMalformedCondition, n)
		}
	case ArityList:
		if n < 1 {
			return fmt.Errorf("%w: set operator requires at least 1 operand, got 0", ErrMalformedCondition)
		}
	default:
		return fmt.Errorf("%w: unknown arity %d", ErrUnsupportedOperator, ar)
	}
	return nil
}

// valueFamily groups schema type tags into checkable value families.
type valueFamily int

const (
	famAny valueFamily = iota
	famInt
	famText
	famBool
	famFloat
	famTime
)

// typeFamily maps a schema type tag to its value family. Unknown tags map
// to famAny and accept every value.
func typeFamily(tag string) valueFamily {
	base := strings.ToLower(tag)
	if i := strings.IndexByte(base, '('); i >= 0 {
		base = base[:i]
	}
	switch strings.TrimSpace(base) {
	case "int", "integer", "bigint", "smallint", "tinyint", "serial", "bigserial":
		return famInt
	case "varchar", "char", "nvarchar", "text", "clob", "character varying":
		return famText
	case "bool", "boolean", "bit":
		return famBool
	case "real", "float", "double", "double precision", "numeric", "decimal":
		return famFloat
	case "date", "time", "datetime", "timestamp", "timestamptz":
		return famTime
	default:
		return famAny
	}
}

// checkAssignable verifies a non-nil value against the column's declared
// type tag. The check is loose: only obvious mismatches between the basic
// Go kinds and the schema families are rejected, and driver-specific value
// types pass through untouched. A nil value is accepted (it means "bind
// SQL NULL" in write statements).
func checkAssignable(col Column, v any) error {
	if v == nil {
		return nil
	}
	fam := typeFamily(col.TypeTag)
	if fam == famAny {
		return nil
	}

	ok := true
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		ok = fam == famInt || fam == famFloat
	case float32, float64:
		ok = fam == famFloat
	case string:
		ok = fam == famText || fam == famTime
	case bool:
		ok = fam == famBool
	case time.Time:
		ok = fam == famTime
	}
	if !ok {
		return fmt.Errorf("%w: value of type %T does not match column %s (%s)", ErrMalformedCondition, v, col.Name, col.TypeTag)
	}
	return nil
}

// validateItem defensively re-checks a condition tree constructed outside
// the factories. Trees that passed factory validation always pass.
func validateItem(item ConditionItem) error {
	switch c := item.(type) {
	case Criterion:
		_, ar, err := operatorSpec(c)
		if err != nil {
			return err
		}
		return checkArity(ar, len(c.Values))
	case CriteriaGroup:
		if len(c.Criteria) == 0 {
			return fmt.Errorf("%w: empty condition group", ErrMalformedCondition)
		}
		for _, sub := range c.Criteria {
			if err := validateItem(sub); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown condition type %T", ErrMalformedCondition, item)
	}
}

// operatorSpec resolves a criterion's operator to its SQL text and arity,
// honoring a custom operator when present.
func operatorSpec(c Criterion) (string, Arity, error) {
	if c.Custom != nil {
		if c.Custom.SQL == "" {
			return "", 0, fmt.Errorf("%w: custom operator has empty SQL fragment", ErrMalformedCondition)
		}
		return c.Custom.SQL, c.Custom.Arity, nil
	}
	ar, ok := c.Operator.Arity()
	if !ok {
		return "", 0, fmt.Errorf("%w: %q", ErrUnsupportedOperator, c.Operator)
	}
	return string(c.Operator), ar, nil
}
