package fullrec

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep(t *testing.T) {
	n := NewNamer()
	got, err := Step(n, plus(plus(Int(1), Int(2)), plus(Int(3), Int(4))))
	require.NoError(t, err)
	assertTermEqual(t, plus(Int(3), plus(Int(3), Int(4))), got)

	got, err = Step(n, App{Abs{"x", TyInt{}, plus(Var("x"), Var("x"))}, plus(Int(1), Int(1))})
	require.NoError(t, err)
	assertTermEqual(t, plus(plus(Int(1), Int(1)), plus(Int(1), Int(1))), got)

	got, err = Step(n, Let{[]Decl{Val{plus(Int(1), Int(1)), "x"}}, Var("x")})
	require.NoError(t, err)
	assertTermEqual(t, Let{[]Decl{Val{Int(2), "x"}}, Var("x")}, got)
}

func TestStepValue(t *testing.T) {
	for _, v := range []Term{Int(1), Bool(false), Abs{"x", TyInt{}, Var("x")}, Tuple{Int(1), Tuple{}}} {
		_, err := Step(NewNamer(), v)
		assert.ErrorIs(t, err, ErrNoRuleApplies, v.String())
	}
}

func TestStepStuck(t *testing.T) {
	for _, term := range []Term{
		Var("x"),
		If{Tuple{}, Int(1), Int(2)},
		App{Bool(true), Int(1)},
		Tuple{Int(1), times(Bool(true), Int(1))},
		Let{[]Decl{ValTuple{Tuple{Int(1)}, []string{"a", "b"}}}, Var("a")},
	} {
		_, err := Step(NewNamer(), term)
		var stuckErr *StuckError
		assert.True(t, errors.As(err, &stuckErr), "%s: %v", term, err)
	}
}

func TestSmallStepAgreesWithBigStep(t *testing.T) {
	for _, p := range wellTyped {
		t.Run(p.name, func(t *testing.T) {
			big, err := Evaluate(p.term)
			require.NoError(t, err)
			small, err := NewEvaluator().EvalSmallStep(context.Background(), p.term)
			require.NoError(t, err)
			assertTermEqual(t, big, small)
		})
	}
}

func TestSmallStepMaxSteps(t *testing.T) {
	_, err := NewEvaluator(WithMaxSteps(500)).EvalSmallStep(context.Background(), App{loop, Int(0)})
	assert.ErrorIs(t, err, ErrDepthExceeded)
}
