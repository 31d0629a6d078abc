package fullrec

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

type Ty interface {
	isType()
	fmt.Stringer
}

type TyInt struct{}

func (TyInt) isType() {}

func (TyInt) String() string {
	return "Int"
}

type TyBool struct{}

func (TyBool) isType() {}

func (TyBool) String() string {
	return "Bool"
}

type TyArr struct {
	From, To Ty
}

func (TyArr) isType() {}

func (t TyArr) String() string {
	if _, ok := t.From.(TyArr); ok {
		return "(" + t.From.String() + ")->" + t.To.String()
	}
	return t.From.String() + "->" + t.To.String()
}

type TyTuple []Ty

func (TyTuple) isType() {}

func (t TyTuple) String() string {
	if len(t) == 1 {
		return "(" + t[0].String() + ",)"
	}
	return "(" + strings.Join(lo.Map(t, func(ty Ty, _ int) string { return ty.String() }), ", ") + ")"
}

// TypeEquals reports whether l and r are structurally identical.
func TypeEquals(l, r Ty) bool {
	switch r := r.(type) {
	case TyInt:
		_, ok := l.(TyInt)
		return ok
	case TyBool:
		_, ok := l.(TyBool)
		return ok
	case TyArr:
		l, ok := l.(TyArr)
		return ok && TypeEquals(l.From, r.From) && TypeEquals(l.To, r.To)
	case TyTuple:
		l, ok := l.(TyTuple)
		return ok && slices.EqualFunc(l, r, TypeEquals)
	}
	panic("unreachable")
}
