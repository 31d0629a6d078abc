package fullrec

import (
	"context"
	"fmt"

	"github.com/samber/lo"
)

// Evaluator reduces closed terms to values by substitution. There is no
// environment: every binder is eliminated by substituting into its scope
// before evaluation continues.
//
// Function application substitutes the unevaluated argument, while a let
// declaration is evaluated before it is substituted.
type Evaluator struct {
	cfg Config
}

func NewEvaluator(opts ...Option) *Evaluator {
	return &Evaluator{cfg: newConfig(opts)}
}

// Evaluate reduces t with a new Evaluator.
func Evaluate(t Term) (Term, error) {
	return NewEvaluator().Eval(context.Background(), t)
}

// Namer returns the name supply used when substitution renames binders.
func (e *Evaluator) Namer() *Namer {
	return e.cfg.Namer
}

// Eval reduces the closed term t to a value: an Int, a Bool, an Abs, or a
// Tuple of values. A program that never reaches a base case does not return
// unless a depth limit is configured or ctx is cancelled. Without a depth
// limit, runaway recursion ends in a fatal stack overflow that cancelling
// ctx cannot prevent.
func (e *Evaluator) Eval(ctx context.Context, t Term) (Term, error) {
	return e.evalBigStep(ctx, t, 0)
}

func (e *Evaluator) evalBigStep(ctx context.Context, t Term, depth int) (Term, error) {
	if e.cfg.MaxDepth > 0 && depth >= e.cfg.MaxDepth {
		return nil, ErrDepthExceeded
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	depth++
	n := e.cfg.Namer
	switch t := t.(type) {
	case Int, Bool, Abs:
		return t, nil
	case Var:
		return nil, stuck(t, "free variable")
	case Primop:
		args := make([]Term, len(t.Args))
		for i, arg := range t.Args {
			v, err := e.evalBigStep(ctx, arg, depth)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		if v, ok := t.Op.apply(args); ok {
			return v, nil
		}
		return nil, stuck(Primop{t.Op, args}, "bad arguments to primitive operation")
	case If:
		v, err := e.evalBigStep(ctx, t.Cond, depth)
		if err != nil {
			return nil, err
		}
		cond, ok := v.(Bool)
		if !ok {
			return nil, stuck(If{v, t.Body, t.Else}, "guard of conditional not a boolean")
		}
		if cond {
			return e.evalBigStep(ctx, t.Body, depth)
		}
		return e.evalBigStep(ctx, t.Else, depth)
	case Tuple:
		vs := make(Tuple, len(t))
		for i, c := range t {
			v, err := e.evalBigStep(ctx, c, depth)
			if err != nil {
				return nil, err
			}
			vs[i] = v
		}
		return vs, nil
	case Rec:
		e.cfg.Logger.Debug("unfolding recursive value", "name", t.Bind)
		return e.evalBigStep(ctx, Subst(n, t, t.Bind, t.Body), depth)
	case App:
		v, err := e.evalBigStep(ctx, t.Fn, depth)
		if err != nil {
			return nil, err
		}
		abs, ok := v.(Abs)
		if !ok {
			return nil, stuck(App{v, t.Arg}, "left term of application is not a function")
		}
		return e.evalBigStep(ctx, Subst(n, t.Arg, abs.Bind, abs.Body), depth)
	case Let:
		if len(t.Decls) == 0 {
			return e.evalBigStep(ctx, t.Body, depth)
		}
		rest := Let{t.Decls[1:], t.Body}
		switch d := t.Decls[0].(type) {
		case Val:
			v, err := e.evalBigStep(ctx, d.Term, depth)
			if err != nil {
				return nil, err
			}
			return e.evalBigStep(ctx, Subst(n, v, d.Bind, rest), depth)
		case ValTuple:
			v, err := e.evalBigStep(ctx, d.Term, depth)
			if err != nil {
				return nil, err
			}
			subs, err := destructure(v, d.Binds)
			if err != nil {
				return nil, err
			}
			return e.evalBigStep(ctx, SubstAll(n, subs, rest), depth)
		}
	}
	panic("unreachable")
}

// destructure pairs the components of the tuple value v with binds.
func destructure(v Term, binds []string) ([]Substitution, error) {
	tup, ok := v.(Tuple)
	if !ok || len(tup) != len(binds) {
		return nil, stuck(v, fmt.Sprintf("cannot destructure into %d names", len(binds)))
	}
	return lo.Map(lo.Zip2([]Term(tup), binds), func(p lo.Tuple2[Term, string], _ int) Substitution {
		return Substitution{p.A, p.B}
	}), nil
}
