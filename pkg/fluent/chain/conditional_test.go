package chain

import (
	"context"
	"testing"

	"github.com/ib-77/fluent/pkg/fluent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhen_Conditions(t *testing.T) {
	t.Parallel()

	adult := &user{Name: "Alice", Age: 25}
	isAdult := Check(func(_ context.Context, u *user) bool { return u.IsAdult() })

	tests := []struct {
		name string
		cond any
		want bool
	}{
		{name: "bool", cond: true, want: true},
		{name: "false bool", cond: false, want: false},
		{name: "predicate", cond: isAdult, want: true},
		{name: "context func", cond: func(_ context.Context, s any) bool { return s.(*user).Age > 30 }, want: false},
		{name: "subject func", cond: func(s any) bool { return s.(*user).Name == "Alice" }, want: true},
		{name: "niladic func", cond: func() bool { return false }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var took string
			c := Of(context.Background(), adult).When(tt.cond,
				func(*Chain) { took = "then" },
				func(*Chain) { took = "otherwise" },
			)
			require.NoError(t, c.Err())
			if tt.want {
				assert.Equal(t, "then", took)
			} else {
				assert.Equal(t, "otherwise", took)
			}
		})
	}
}

func TestWhen_BranchContinuesChain(t *testing.T) {
	t.Parallel()

	calc := newCalculator(10)
	c := Of(context.Background(), calc).
		When(Check(func(_ context.Context, c *calculator) bool { return c.IsPositive() }),
			func(c *Chain) { c.Call("Multiply", 2) },
			func(c *Chain) { c.Call("Add", 100) },
		).
		Call("GetValue")

	out, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, 20.0, out)
}

func TestWhen_FalseWithoutOtherwiseIsNoop(t *testing.T) {
	t.Parallel()

	calc := newCalculator(3)
	c := Of(context.Background(), calc).Call("GetValue").When(false, func(c *Chain) { c.Call("Reset") }, nil)

	out, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, 3.0, out)
	assert.Equal(t, 3.0, calc.GetValue())
}

func TestWhen_UnsupportedCondition(t *testing.T) {
	t.Parallel()

	ran := false
	c := Of(context.Background(), newCalculator(1)).When("yes", func(*Chain) { ran = true }, nil)

	assert.ErrorIs(t, c.Err(), fluent.ErrInvalidArgument)
	assert.False(t, ran)

	c = Of(context.Background(), newCalculator(1)).Unless(42, nil, nil)
	assert.ErrorIs(t, c.Err(), fluent.ErrInvalidArgument)
}

func TestUnless(t *testing.T) {
	t.Parallel()

	minor := &user{Name: "Tim", Age: 12}
	var took []string

	Of(context.Background(), minor).
		Unless(func(s any) bool { return s.(*user).IsAdult() },
			func(*Chain) { took = append(took, "then") },
			func(*Chain) { took = append(took, "otherwise") },
		).
		Unless(true,
			func(*Chain) { took = append(took, "then") },
			func(*Chain) { took = append(took, "otherwise") },
		)

	assert.Equal(t, []string{"then", "otherwise"}, took)
}

func TestWhenAllAnyNone_AreGates(t *testing.T) {
	t.Parallel()

	yes := func(context.Context, any) bool { return true }
	no := func(context.Context, any) bool { return false }

	calc := newCalculator(4)
	c := Of(context.Background(), calc).Call("GetValue")

	for _, next := range []*Chain{
		c.WhenAll(yes, no),
		c.WhenAny(yes, no),
		c.WhenNone(yes),
		c.WhenAll(),
		c.WhenAny(),
		c.WhenNone(),
	} {
		assert.Same(t, c, next)
	}

	out, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, 4.0, out)
	assert.Same(t, calc, c.Instance())
}

func TestCombinators_ShortCircuit(t *testing.T) {
	t.Parallel()

	var evaluated []string
	pred := func(name string, result bool) Predicate {
		return func(context.Context, any) bool {
			evaluated = append(evaluated, name)
			return result
		}
	}
	ctx := context.Background()

	assert.False(t, AllOf(pred("a", true), pred("b", false), pred("c", true))(ctx, nil))
	assert.Equal(t, []string{"a", "b"}, evaluated)

	evaluated = nil
	assert.True(t, AnyOf(pred("a", false), pred("b", true), pred("c", true))(ctx, nil))
	assert.Equal(t, []string{"a", "b"}, evaluated)

	evaluated = nil
	assert.False(t, NoneOf(pred("a", true), pred("b", false))(ctx, nil))
	assert.Equal(t, []string{"a"}, evaluated)

	assert.True(t, AllOf()(ctx, nil))
	assert.False(t, AnyOf()(ctx, nil))
	assert.True(t, NoneOf()(ctx, nil))
}

func TestWhen_WithCombinator(t *testing.T) {
	t.Parallel()

	u := &user{Name: "Alice", Age: 30, Email: "alice@example.com"}
	hasEmail := Check(func(_ context.Context, u *user) bool { return u.Email != "" })
	isAdult := Check(func(_ context.Context, u *user) bool { return u.IsAdult() })

	c := Of(context.Background(), u).
		When(AllOf(hasEmail, isAdult), func(c *Chain) { c.Call("AddRole", "verified") }, nil).
		When(NoneOf(hasEmail), func(c *Chain) { c.Call("AddRole", "anonymous") }, nil)

	require.NoError(t, c.Err())
	assert.Equal(t, []string{"verified"}, u.GetRoles())
}

func TestCheck_WrongTypeIsFalse(t *testing.T) {
	t.Parallel()

	isAdult := Check(func(_ context.Context, u *user) bool { return u.IsAdult() })
	assert.False(t, isAdult(context.Background(), newCalculator(1)))
}
