package fullrec

import (
	"fmt"

	"github.com/pkg/errors"
)

// Context is a persistent stack of variable typings. The nil *Context is the
// empty context. Bind never modifies the receiver, so contexts may be shared
// freely.
type Context struct {
	Name   string
	Type   Ty
	parent *Context
}

// Bind returns ctx extended with name:ty, shadowing any earlier binding of
// name.
func (ctx *Context) Bind(name string, ty Ty) *Context {
	return &Context{Name: name, Type: ty, parent: ctx}
}

func (ctx *Context) lookup(name string) (Ty, error) {
	for c := ctx; c != nil; c = c.parent {
		if c.Name == name {
			return c.Type, nil
		}
	}
	return nil, errors.Wrapf(errUnbound, "%q", name)
}

// TypeOf infers the type of t under ctx. It fails with a *TypeError.
func TypeOf(ctx *Context, t Term) (Ty, error) {
	switch t := t.(type) {
	case Int:
		return TyInt{}, nil
	case Bool:
		return TyBool{}, nil
	case Var:
		ty, err := ctx.lookup(string(t))
		if err != nil {
			return nil, &TypeError{Msg: fmt.Sprintf("free variable %q", string(t)), Err: err}
		}
		return ty, nil
	case Primop:
		dom, rng := t.Op.signature()
		if len(t.Args) != len(dom) {
			return nil, &TypeError{Msg: fmt.Sprintf("%s expects %d arguments, got %d", t.Op, len(dom), len(t.Args))}
		}
		for i, arg := range t.Args {
			ty, err := TypeOf(ctx, arg)
			if err != nil {
				return nil, err
			}
			if !TypeEquals(ty, dom[i]) {
				return nil, &TypeError{
					Msg:      fmt.Sprintf("argument %d of %s", i+1, t.Op),
					Expected: dom[i],
					Found:    ty,
				}
			}
		}
		return rng, nil
	case If:
		condTy, err := TypeOf(ctx, t.Cond)
		if err != nil {
			return nil, err
		}
		if !TypeEquals(condTy, TyBool{}) {
			return nil, &TypeError{Msg: "guard of conditional not a boolean", Expected: TyBool{}, Found: condTy}
		}
		bodyTy, err := TypeOf(ctx, t.Body)
		if err != nil {
			return nil, err
		}
		elseTy, err := TypeOf(ctx, t.Else)
		if err != nil {
			return nil, err
		}
		if !TypeEquals(bodyTy, elseTy) {
			return nil, &TypeError{Msg: "arms of conditional have different types", Expected: bodyTy, Found: elseTy}
		}
		return bodyTy, nil
	case Tuple:
		tys := make(TyTuple, len(t))
		for i, c := range t {
			ty, err := TypeOf(ctx, c)
			if err != nil {
				return nil, err
			}
			tys[i] = ty
		}
		return tys, nil
	case Abs:
		bodyTy, err := TypeOf(ctx.Bind(t.Bind, t.Type), t.Body)
		if err != nil {
			return nil, err
		}
		return TyArr{t.Type, bodyTy}, nil
	case Rec:
		bodyTy, err := TypeOf(ctx.Bind(t.Bind, t.Type), t.Body)
		if err != nil {
			return nil, err
		}
		if !TypeEquals(bodyTy, t.Type) {
			return nil, &TypeError{Msg: "recursive value does not have its declared type", Expected: t.Type, Found: bodyTy}
		}
		return t.Type, nil
	case App:
		fnTy, err := TypeOf(ctx, t.Fn)
		if err != nil {
			return nil, err
		}
		arr, ok := fnTy.(TyArr)
		if !ok {
			return nil, &TypeError{Msg: "arrow type expected", Found: fnTy}
		}
		argTy, err := TypeOf(ctx, t.Arg)
		if err != nil {
			return nil, err
		}
		if !TypeEquals(argTy, arr.From) {
			return nil, &TypeError{Msg: "parameter type mismatch", Expected: arr.From, Found: argTy}
		}
		return arr.To, nil
	case Let:
		for _, d := range t.Decls {
			ty, err := TypeOf(ctx, declTerm(d))
			if err != nil {
				return nil, err
			}
			switch d := d.(type) {
			case Val:
				ctx = ctx.Bind(d.Bind, ty)
			case ValTuple:
				tup, ok := ty.(TyTuple)
				if !ok || len(tup) != len(d.Binds) {
					return nil, &TypeError{Msg: fmt.Sprintf("cannot destructure into %d names", len(d.Binds)), Found: ty}
				}
				for i, b := range d.Binds {
					ctx = ctx.Bind(b, tup[i])
				}
			}
		}
		return TypeOf(ctx, t.Body)
	}
	panic("unreachable")
}
