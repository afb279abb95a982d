package dynsql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zuojunyuan/mybatis-dynamic-sql/internal/types"
)

// renderContext tracks rendering state for one build: the target dialect,
// whether column references honor table aliases, and the parameter counter.
// The counter is local to a single invocation, never shared across builds.
type renderContext struct {
	dialect Dialect
	aliased bool
	count   int
	params  types.ParamSet
}

// bind mints the next parameter name, registers the value under it, and
// returns the placeholder text to embed in the SQL.
func (ctx *renderContext) bind(v any) string {
	ctx.count++
	name := "p" + strconv.Itoa(ctx.count)
	ctx.params = append(ctx.params, types.BoundParam{Name: name, Value: v})
	return ctx.dialect.placeholder(ctx.count, name)
}

// column renders a column reference. The alias prefix applies only when
// the statement kind honors aliases (SELECT) and the column has not opted
// out.
func (ctx *renderContext) column(c Column) string {
	if ctx.aliased && !c.NoAlias && c.Table.Alias != "" {
		return c.Table.Alias + "." + c.Name
	}
	return c.Name
}

// table renders the table reference for the FROM clause.
func (ctx *renderContext) table(t Table) string {
	if ctx.aliased && t.Alias != "" {
		return t.Name + " " + t.Alias
	}
	return t.Name
}

// renderWhereClause renders a condition list into "WHERE ..." text, binding
// parameters into the context. An empty list yields the empty string; the
// WHERE keyword is never emitted with an empty body.
func renderWhereClause(criteria Criteria, ctx *renderContext) (string, error) {
	if criteria.Empty() {
		return "", nil
	}
	var sql strings.Builder
	sql.WriteString("WHERE ")
	if err := renderCriteria(criteria, &sql, ctx); err != nil {
		return "", err
	}
	return sql.String(), nil
}

// renderCriteria renders a condition list. The first element renders with
// no leading connector regardless of its stored connector value.
func renderCriteria(items []ConditionItem, sql *strings.Builder, ctx *renderContext) error {
	for i, item := range items {
		if err := renderItem(item, i == 0, sql, ctx); err != nil {
			return err
		}
	}
	return nil
}

func renderItem(item ConditionItem, first bool, sql *strings.Builder, ctx *renderContext) error {
	switch c := item.(type) {
	case Criterion:
		if !first {
			if err := writeConnector(c.Connector, sql); err != nil {
				return err
			}
		}
		return renderCriterion(c, sql, ctx)
	case CriteriaGroup:
		if len(c.Criteria) == 0 {
			return fmt.Errorf("%w: empty condition group", ErrMalformedCondition)
		}
		if !first {
			if err := writeConnector(c.Connector, sql); err != nil {
				return err
			}
		}
		sql.WriteString("(")
		if err := renderCriteria(c.Criteria, sql, ctx); err != nil {
			return err
		}
		sql.WriteString(")")
		return nil
	default:
		return fmt.Errorf("%w: unknown condition type %T", ErrMalformedCondition, item)
	}
}

// writeConnector emits the joiner before a non-first condition. A missing
// connector past the first position means the tree was hand-built
// inconsistently.
func writeConnector(conn Connector, sql *strings.Builder) error {
	switch conn {
	case ConnAnd, ConnOr:
		sql.WriteString(" ")
		sql.WriteString(string(conn))
		sql.WriteString(" ")
		return nil
	default:
		return fmt.Errorf("%w: condition past the first position has no connector", ErrMalformedCondition)
	}
}

// renderCriterion emits one leaf test. Operand counts are re-checked
// defensively; a tree built through the factories cannot fail here.
func renderCriterion(c Criterion, sql *strings.Builder, ctx *renderContext) error {
	opSQL, ar, err := operatorSpec(c)
	if err != nil {
		return err
	}
	if err := checkArity(ar, len(c.Values)); err != nil {
		return err
	}

	col := ctx.column(c.Column)
	switch ar {
	case ArityNone:
		sql.WriteString(col)
		sql.WriteString(" ")
		sql.WriteString(opSQL)
	case ArityOne:
		sql.WriteString(col)
		sql.WriteString(" ")
		sql.WriteString(opSQL)
		sql.WriteString(" ")
		sql.WriteString(ctx.bind(c.Values[0]))
	case ArityPair:
		sql.WriteString(col)
		sql.WriteString(" ")
		sql.WriteString(opSQL)
		sql.WriteString(" ")
		sql.WriteString(ctx.bind(c.Values[0]))
		sql.WriteString(" AND ")
		sql.WriteString(ctx.bind(c.Values[1]))
	case ArityList:
		placeholders := make([]string, len(c.Values))
		for i, v := range c.Values {
			placeholders[i] = ctx.bind(v)
		}
		sql.WriteString(col)
		sql.WriteString(" ")
		sql.WriteString(opSQL)
		sql.WriteString(" (")
		sql.WriteString(strings.Join(placeholders, ", "))
		sql.WriteString(")")
	}
	return nil
}

// BuildWhere renders a built condition list into a standalone WhereSupport
// using the default dialect. Optional dialect overrides the placeholder
// style.
func BuildWhere(criteria Criteria, dialect ...Dialect) (*WhereSupport, error) {
	ctx := &renderContext{}
	if len(dialect) > 0 {
		ctx.dialect = dialect[0]
	}
	clause, err := renderWhereClause(criteria, ctx)
	if err != nil {
		return nil, err
	}
	return &WhereSupport{
		WhereClause: clause,
		Params:      ctx.params,
	}, nil
}
