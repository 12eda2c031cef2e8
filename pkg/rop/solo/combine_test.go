package solo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropfx/pkg/rop"
)

func TestCombine2_AllSuccess(t *testing.T) {
	t.Parallel()

	out := Combine2(rop.Success[string](1), rop.Success[string]("A"))
	assert.Equal(t, rop.Success[string](Tuple2[int, string]{V1: 1, V2: "A"}), out)
}

func TestCombine3_AccumulatesInInputOrder(t *testing.T) {
	t.Parallel()

	out := Combine3(
		rop.Success[string](1),
		rop.Failure[bool]("e2"),
		rop.Failure[float64]("e3"),
	)

	require.True(t, out.IsFailure())
	assert.Equal(t, []string{"e2", "e3"}, out.Errors())
}

func TestCombine_KeepsDuplicateErrors(t *testing.T) {
	t.Parallel()

	out := Combine2(rop.Failure[int]("x", "y"), rop.Failure[int]("x"))
	assert.Equal(t, []string{"x", "y", "x"}, out.Errors())
}

func TestCombine4And5(t *testing.T) {
	t.Parallel()

	ok4 := Combine4(
		rop.Success[string](1),
		rop.Success[string]("b"),
		rop.Success[string](true),
		rop.Success[string](2.5),
	)
	assert.Equal(t, Tuple4[int, string, bool, float64]{1, "b", true, 2.5}, ok4.MustValue())

	ok5 := Combine5(
		rop.Success[string](1),
		rop.Success[string](2),
		rop.Success[string](3),
		rop.Success[string](4),
		rop.Success[string](5),
	)
	assert.Equal(t, Tuple5[int, int, int, int, int]{1, 2, 3, 4, 5}, ok5.MustValue())

	failed := Combine5(
		rop.Failure[int]("e1"),
		rop.Success[string](2),
		rop.Failure[int]("e3"),
		rop.Success[string](4),
		rop.Failure[int]("e5a", "e5b"),
	)
	assert.Equal(t, []string{"e1", "e3", "e5a", "e5b"}, failed.Errors())
}

// CombineAll returns only the first value when every input succeeds, unlike
// the tuple forms which return all values.
func TestCombineAll_ReturnsFirstValueOnSuccess(t *testing.T) {
	t.Parallel()

	out := CombineAll(rop.Success[string](1), rop.Success[string](2), rop.Success[string](3))
	assert.Equal(t, rop.Success[string](1), out)
}

func TestCombineAll_AccumulatesAllErrors(t *testing.T) {
	t.Parallel()

	out := CombineAll(
		rop.Success[string](1),
		rop.Failure[int]("e2"),
		rop.Failure[int]("e3"),
	)
	assert.Equal(t, rop.Failure[int]("e2", "e3"), out)
}

func TestCombineAll_NoInputsPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, rop.ErrArity))

		var arity *rop.ArityError
		require.ErrorAs(t, err, &arity)
		assert.Equal(t, 0, arity.Got)
	}()

	CombineAll[int, string]()
}

func TestCombine_ZeroOutcomePanics(t *testing.T) {
	t.Parallel()

	var zero rop.Outcome[int, string]

	assert.PanicsWithValue(t, rop.ErrEmptyFailure, func() {
		Combine2(zero, rop.Success[string](1))
	})
	assert.PanicsWithValue(t, rop.ErrEmptyFailure, func() {
		Combine3(rop.Failure[int]("e"), rop.Success[string](1), zero)
	})
	assert.PanicsWithValue(t, rop.ErrEmptyFailure, func() {
		CombineAll(rop.Success[string](1), zero)
	})
}
