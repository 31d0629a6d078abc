package fullrec

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Result is a program's static type together with its value.
type Result struct {
	Type  Ty
	Value Term
}

// Run type checks the closed term t under the empty context and then
// evaluates it.
func Run(ctx context.Context, t Term, opts ...Option) (Result, error) {
	return NewEvaluator(opts...).Run(ctx, t)
}

// Run type checks t under the empty context and evaluates it with e.
func (e *Evaluator) Run(ctx context.Context, t Term) (Result, error) {
	ty, err := TypeOf(nil, t)
	if err != nil {
		return Result{}, err
	}
	e.cfg.Logger.Debug("type inference completed", "type", ty.String())
	v, err := e.Eval(ctx, t)
	if err != nil {
		return Result{Type: ty}, err
	}
	e.cfg.Logger.Debug("evaluation completed", "result", v.String())
	return Result{Type: ty, Value: v}, nil
}

// RunAll runs each of ts as with Run, at most Config.Workers at a time.
// Every program gets its own Namer, so a Namer passed with WithNamer is not
// used. MaxDepth defaults to DefaultMaxDepth. Results are in the order of
// ts; the first failure cancels the programs still running and is returned.
func RunAll(ctx context.Context, ts []Term, opts ...Option) ([]Result, error) {
	cfg := newConfig(opts)
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	results := make([]Result, len(ts))
	for i, t := range ts {
		eg.Go(func() error {
			e := &Evaluator{cfg: cfg}
			e.cfg.Namer = NewNamer()
			r, err := e.Run(gctx, t)
			if err != nil {
				return errors.Wrapf(err, "program %d", i)
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
