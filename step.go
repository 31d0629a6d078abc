package fullrec

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Step performs one leftmost reduction of the closed term t, following the
// same rules as Eval. It returns ErrNoRuleApplies when t is already a value
// and a *StuckError when no rule matches a non-value.
func Step(n *Namer, t Term) (Term, error) {
	switch t := t.(type) {
	case Int, Bool, Abs:
		return nil, ErrNoRuleApplies
	case Var:
		return nil, stuck(t, "free variable")
	case Primop:
		i := firstNonVal(t.Args)
		if i < 0 {
			if v, ok := t.Op.apply(t.Args); ok {
				return v, nil
			}
			return nil, stuck(t, "bad arguments to primitive operation")
		}
		arg, err := Step(n, t.Args[i])
		if err != nil {
			return nil, err
		}
		return Primop{t.Op, replaceAt(t.Args, i, arg)}, nil
	case If:
		if cond, ok := t.Cond.(Bool); ok {
			if cond {
				return t.Body, nil
			}
			return t.Else, nil
		}
		if isVal(t.Cond) {
			return nil, stuck(t, "guard of conditional not a boolean")
		}
		cond, err := Step(n, t.Cond)
		if err != nil {
			return nil, err
		}
		return If{cond, t.Body, t.Else}, nil
	case Tuple:
		i := firstNonVal(t)
		if i < 0 {
			return nil, ErrNoRuleApplies
		}
		c, err := Step(n, t[i])
		if err != nil {
			return nil, err
		}
		return Tuple(replaceAt(t, i, c)), nil
	case Rec:
		return Subst(n, t, t.Bind, t.Body), nil
	case App:
		if abs, ok := t.Fn.(Abs); ok {
			return Subst(n, t.Arg, abs.Bind, abs.Body), nil
		}
		if isVal(t.Fn) {
			return nil, stuck(t, "left term of application is not a function")
		}
		fn, err := Step(n, t.Fn)
		if err != nil {
			return nil, err
		}
		return App{fn, t.Arg}, nil
	case Let:
		if len(t.Decls) == 0 {
			return t.Body, nil
		}
		rest := Let{t.Decls[1:], t.Body}
		d := t.Decls[0]
		if !isVal(declTerm(d)) {
			t1, err := Step(n, declTerm(d))
			if err != nil {
				return nil, err
			}
			return Let{prepend(rebuildDecl(d, t1, d.Bound()), rest.Decls), t.Body}, nil
		}
		switch d := d.(type) {
		case Val:
			return Subst(n, d.Term, d.Bind, rest), nil
		case ValTuple:
			subs, err := destructure(d.Term, d.Binds)
			if err != nil {
				return nil, err
			}
			return SubstAll(n, subs, rest), nil
		}
	}
	panic("unreachable")
}

// EvalSmallStep reduces t by repeated Step until it is a value.
func (e *Evaluator) EvalSmallStep(ctx context.Context, t Term) (Term, error) {
	for steps := 0; ; steps++ {
		if e.cfg.MaxSteps > 0 && steps >= e.cfg.MaxSteps {
			return nil, ErrDepthExceeded
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := Step(e.cfg.Namer, t)
		if errors.Is(err, ErrNoRuleApplies) {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
		t = next
	}
}

func firstNonVal(ts []Term) int {
	return slices.IndexFunc(ts, func(t Term) bool { return !isVal(t) })
}

func replaceAt(ts []Term, i int, t Term) []Term {
	return lo.Map(ts, func(u Term, j int) Term {
		if j == i {
			return t
		}
		return u
	})
}
