package fullrec

import (
	"github.com/samber/lo"
)

// FreeVars returns the names occurring unbound in t, without duplicates, in
// order of first occurrence.
func FreeVars(t Term) []string {
	switch t := t.(type) {
	case Int, Bool:
		return nil
	case Var:
		return []string{string(t)}
	case If:
		return lo.Union(FreeVars(t.Cond), FreeVars(t.Body), FreeVars(t.Else))
	case Primop:
		return freeVarsAll(t.Args)
	case Tuple:
		return freeVarsAll(t)
	case Abs:
		return lo.Without(FreeVars(t.Body), t.Bind)
	case Rec:
		return lo.Without(FreeVars(t.Body), t.Bind)
	case Let:
		return freeVarsLet(t.Decls, t.Body)
	case App:
		return lo.Union(FreeVars(t.Fn), FreeVars(t.Arg))
	}
	panic("unreachable")
}

// IsFree reports whether x occurs free in t.
func IsFree(x string, t Term) bool {
	return lo.Contains(FreeVars(t), x)
}

func freeVarsAll(ts []Term) []string {
	return lo.Union(lo.Map(ts, func(t Term, _ int) []string { return FreeVars(t) })...)
}

// freeVarsLet treats let d; rest in body as d scoping over let rest in body.
func freeVarsLet(decls []Decl, body Term) []string {
	if len(decls) == 0 {
		return FreeVars(body)
	}
	d := decls[0]
	return lo.Union(FreeVars(declTerm(d)), lo.Without(freeVarsLet(decls[1:], body), d.Bound()...))
}

func declTerm(d Decl) Term {
	switch d := d.(type) {
	case Val:
		return d.Term
	case ValTuple:
		return d.Term
	}
	panic("unreachable")
}
