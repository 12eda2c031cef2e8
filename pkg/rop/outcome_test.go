package rop

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess_HoldsValue(t *testing.T) {
	t.Parallel()

	r := Success[string](5)

	require.True(t, r.IsSuccess())
	require.False(t, r.IsFailure())
	require.False(t, r.IsEmpty())
	v, ok := r.Value()
	require.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Nil(t, r.Errors())
	_, hasErr := r.FirstError()
	assert.False(t, hasErr)
}

func TestFailure_KeepsErrorsInOrder(t *testing.T) {
	t.Parallel()

	r := Failure[int]("a", "b", "a")

	require.True(t, r.IsFailure())
	assert.Equal(t, []string{"a", "b", "a"}, r.Errors())
	first, ok := r.FirstError()
	require.True(t, ok)
	assert.Equal(t, "a", first)

	v, ok := r.Value()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestFailureOf_CopiesInput(t *testing.T) {
	t.Parallel()

	errs := []string{"x", "y"}
	r := FailureOf[int](errs)
	errs[0] = "changed"

	assert.Equal(t, []string{"x", "y"}, r.Errors())
}

func TestFailureOf_EmptyPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, ErrEmptyFailure, func() {
		FailureOf[int]([]string{})
	})
}

func TestFailureDefault_UsesZeroError(t *testing.T) {
	t.Parallel()

	r := FailureDefault[int, string]()
	assert.Equal(t, []string{""}, r.Errors())
}

func TestErrors_ReturnsCopy(t *testing.T) {
	t.Parallel()

	r := Failure[int]("bad")
	errs := r.Errors()
	errs[0] = "mutated"

	assert.Equal(t, []string{"bad"}, r.Errors())
}

func TestZeroOutcome_IsEmpty(t *testing.T) {
	t.Parallel()

	var r Outcome[int, string]
	assert.True(t, r.IsEmpty())
	assert.False(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
}

func TestMustValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Success[error](3).MustValue())
	assert.PanicsWithValue(t, ErrNoValue, func() {
		Failure[int](errors.New("boom")).MustValue()
	})
}

func TestCastFailure(t *testing.T) {
	t.Parallel()

	r := CastFailure[string](Failure[int]("e1", "e2"))
	assert.True(t, r.IsFailure())
	assert.Equal(t, []string{"e1", "e2"}, r.Errors())

	assert.PanicsWithValue(t, ErrSuccessCast, func() {
		CastFailure[string](Success[string](1))
	})
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	positive := func(x int) bool { return x > 0 }

	assert.Equal(t, Success[string](5), Success[string](5).Ensure(positive, "neg"))
	assert.Equal(t, Failure[int]("neg"), Success[string](-1).Ensure(positive, "neg"))

	called := 0
	r := Failure[int]("first").Ensure(func(int) bool {
		called++
		return false
	}, "second")
	assert.Equal(t, Failure[int]("first"), r)
	assert.Zero(t, called, "predicate must not run on failure")
}

func TestEnsureAndWhere_AreEquivalent(t *testing.T) {
	t.Parallel()

	preds := []func(int) bool{
		func(x int) bool { return x > 0 },
		func(x int) bool { return x%2 == 0 },
		func(int) bool { return true },
	}
	inputs := []Outcome[int, string]{
		Success[string](-3),
		Success[string](4),
		Success[string](7),
		Failure[int]("e"),
	}

	for i, in := range inputs {
		for j, p := range preds {
			t.Run(fmt.Sprintf("%d/%d", i, j), func(t *testing.T) {
				assert.True(t, Equal(in.Ensure(p, "err"), in.Where(p, "err")))
			})
		}
	}
}

func TestFilter_UsesZeroError(t *testing.T) {
	t.Parallel()

	r := Success[string](3).Filter(func(x int) bool { return x > 5 })
	assert.Equal(t, []string{""}, r.Errors())
}

func TestTap_OnlyOnSuccess(t *testing.T) {
	t.Parallel()

	var seen []int
	s := Success[string](1)
	assert.Equal(t, s, s.Tap(func(v int) { seen = append(seen, v) }))

	f := Failure[int]("bad")
	assert.Equal(t, f, f.Tap(func(v int) { seen = append(seen, v) }))

	assert.Equal(t, []int{1}, seen)
}

func TestTapError_OnlyOnFailure(t *testing.T) {
	t.Parallel()

	var seen []string
	f := Failure[int]("a", "b")
	out := f.TapError(func(errs []string) {
		seen = append(seen, errs...)
		errs[0] = "mutated"
	})
	assert.Equal(t, f, out)
	assert.Equal(t, []string{"a", "b"}, f.Errors())

	Success[string](1).TapError(func(errs []string) { seen = append(seen, "unexpected") })
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestGetValueOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Success[string](1).GetValueOrDefault())
	assert.Equal(t, 0, Failure[int]("e").GetValueOrDefault())
	assert.Equal(t, 1, Success[string](1).GetValueOr(9))
	assert.Equal(t, 9, Failure[int]("e").GetValueOr(9))
}

func TestGetValueOrElse_IsLazy(t *testing.T) {
	t.Parallel()

	calls := 0
	factory := func() int {
		calls++
		return 42
	}

	assert.Equal(t, 1, Success[string](1).GetValueOrElse(factory))
	assert.Zero(t, calls)

	assert.Equal(t, 42, Failure[int]("e").GetValueOrElse(factory))
	assert.Equal(t, 1, calls)
}

func TestWith_CopiesSuccessOnly(t *testing.T) {
	t.Parallel()

	s := Success[string](1)
	s2 := s.With(2)
	assert.Equal(t, 1, s.MustValue())
	assert.Equal(t, 2, s2.MustValue())

	f := Failure[int]("e")
	assert.Equal(t, f, f.With(2))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, Equal(Success[string](1), Success[string](1)))
	assert.False(t, Equal(Success[string](1), Success[string](2)))
	assert.False(t, Equal(Success[string](0), Failure[int]("")))
	assert.True(t, Equal(Failure[int]("a", "b"), Failure[int]("a", "b")))
	assert.False(t, Equal(Failure[int]("a", "b"), Failure[int]("b", "a")))
	assert.False(t, Equal(Failure[int]("a"), Failure[int]("a", "a")))
}

func TestEqualFunc_NonComparable(t *testing.T) {
	t.Parallel()

	eqSlice := func(a, b []int) bool { return fmt.Sprint(a) == fmt.Sprint(b) }
	eqErr := func(a, b error) bool { return a.Error() == b.Error() }

	assert.True(t, EqualFunc(Success[error]([]int{1, 2}), Success[error]([]int{1, 2}), eqSlice, eqErr))
	assert.True(t, EqualFunc(
		Failure[[]int](errors.New("x")),
		Failure[[]int](errors.New("x")),
		eqSlice, eqErr))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Success(10)", Success[string](10).String())
	assert.Equal(t, "Failure([bad])", Failure[int]("bad").String())
}

func TestImmutability_MethodsLeaveReceiverIntact(t *testing.T) {
	t.Parallel()

	s := Success[string](5)
	f := Failure[int]("e1", "e2")
	sSnap, fSnap := s, Failure[int]("e1", "e2")

	s.Ensure(func(int) bool { return false }, "x")
	s.Filter(func(int) bool { return false })
	s.With(7)
	s.Tap(func(int) {})
	f.Ensure(func(int) bool { return false }, "x")
	f.TapError(func(errs []string) { errs[1] = "changed" })
	_ = CastFailure[string](f)

	assert.True(t, Equal(sSnap, s))
	assert.True(t, Equal(fSnap, f))
}

func TestArityError(t *testing.T) {
	t.Parallel()

	var err error = &ArityError{Op: "CombineAll", Got: 0, Min: 1}
	assert.ErrorIs(t, err, ErrArity)
	assert.EqualError(t, err, "rop: CombineAll needs at least 1 input(s), got 0")
}
