package fluent

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ X, Y int }

func TestIsSubject(t *testing.T) {
	t.Parallel()

	var nilPoint *point
	n := 5

	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"pointer to struct", &point{}, true},
		{"struct value", point{}, true},
		{"nil", nil, false},
		{"nil pointer", nilPoint, false},
		{"int", 42, false},
		{"string", "x", false},
		{"slice", []int{1}, false},
		{"map", map[string]int{}, false},
		{"pointer to int", &n, false},
		{"func", func() {}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsSubject(tc.in))
		})
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *point
	var m map[string]int
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(&point{}))
}

func TestTypedValueOf(t *testing.T) {
	t.Parallel()

	v, err := TypedValueOf[int](7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = TypedValueOf[string](7)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = TypedValueOf[fmt.Stringer](nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()

	start := time.Now()
	err := NewTimeoutError(time.Second, start, start.Add(1500*time.Millisecond))

	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, 1500*time.Millisecond, err.Elapsed())
	assert.Contains(t, err.Error(), "timed out after 1s")
}

func TestPanicError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	assert.ErrorIs(t, &PanicError{Value: cause}, cause)
	assert.Nil(t, (&PanicError{Value: "text"}).Unwrap())
}

func TestResult(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ok := Success(id, 3)
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, 3, ok.Result())
	assert.Equal(t, id, ok.Id())
	assert.False(t, ok.CreatedAt().IsZero())

	failed := Fail[int](id, ErrTimeout)
	assert.True(t, failed.IsFailure())
	assert.ErrorIs(t, failed.Err(), ErrTimeout)
}
