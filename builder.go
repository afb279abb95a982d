package dynsql

import "fmt"

// CriteriaBuilder assembles a condition list in fluent order. Building is
// append-only: there is no edit or removal of previously added conditions.
// Build consumes the builder; a consumed builder cannot be reused.
type CriteriaBuilder struct {
	items []ConditionItem
	err   error
	built bool
}

// Where starts a new condition list with the given criterion. The first
// condition always carries the NONE connector.
func Where(c Criterion) *CriteriaBuilder {
	b := &CriteriaBuilder{}
	if err := validateItem(c); err != nil {
		b.err = err
		return b
	}
	c.Connector = ConnNone
	b.items = append(b.items, c)
	return b
}

// And appends the criterion with an AND connector. When nested items are
// given, the criterion and the nested items form one parenthesized group
// attached with AND.
func (b *CriteriaBuilder) And(c Criterion, nested ...ConditionItem) *CriteriaBuilder {
	return b.append(ConnAnd, c, nested)
}

// Or appends the criterion with an OR connector. When nested items are
// given, the criterion and the nested items form one parenthesized group
// attached with OR.
func (b *CriteriaBuilder) Or(c Criterion, nested ...ConditionItem) *CriteriaBuilder {
	return b.append(ConnOr, c, nested)
}

func (b *CriteriaBuilder) append(conn Connector, c Criterion, nested []ConditionItem) *CriteriaBuilder {
	if b.err != nil {
		return b
	}
	if b.built {
		b.err = fmt.Errorf("criteria builder already consumed by Build")
		return b
	}
	item := joined(conn, c, nested)
	if err := validateItem(item); err != nil {
		b.err = err
		return b
	}
	b.items = append(b.items, item)
	return b
}

// Build produces the immutable condition list. The builder is unusable
// afterwards.
func (b *CriteriaBuilder) Build() (Criteria, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.built {
		return nil, fmt.Errorf("criteria builder already consumed by Build")
	}
	b.built = true
	out := make(Criteria, len(b.items))
	copy(out, b.items)
	b.items = nil
	return out, nil
}

// MustBuild produces the condition list or panics on error.
func (b *CriteriaBuilder) MustBuild() Criteria {
	criteria, err := b.Build()
	if err != nil {
		panic(err)
	}
	return criteria
}

// And creates a condition item attached with an AND connector, for
// embedding as a nested group inside a builder's And/Or call. Without
// nested items it is the criterion itself; with nested items it is a
// parenthesized group.
func And(c Criterion, nested ...ConditionItem) ConditionItem {
	return joined(ConnAnd, c, nested)
}

// Or creates a condition item attached with an OR connector, for embedding
// as a nested group inside a builder's And/Or call.
func Or(c Criterion, nested ...ConditionItem) ConditionItem {
	return joined(ConnOr, c, nested)
}

// joined builds the appended item for one And/Or step: a bare criterion,
// or a group wrapping the criterion and its nested items. The group's
// first element is forced to the NONE connector.
func joined(conn Connector, c Criterion, nested []ConditionItem) ConditionItem {
	if len(nested) == 0 {
		c.Connector = conn
		return c
	}
	c.Connector = ConnNone
	criteria := make([]ConditionItem, 0, len(nested)+1)
	criteria = append(criteria, c)
	criteria = append(criteria, nested...)
	return CriteriaGroup{Connector: conn, Criteria: criteria}
}
