package fullrec

import (
	"github.com/samber/lo"
)

// Substitution replaces free occurrences of Name by Term.
type Substitution struct {
	Term Term
	Name string
}

// Subst replaces the free occurrences of x in t by s. Binders in t whose
// names occur free in s are renamed with names drawn from n first, so no free
// name of s is ever captured.
func Subst(n *Namer, s Term, x string, t Term) Term {
	switch t := t.(type) {
	case Int, Bool:
		return t
	case Var:
		if string(t) == x {
			return s
		}
		return t
	case If:
		return If{Subst(n, s, x, t.Cond), Subst(n, s, x, t.Body), Subst(n, s, x, t.Else)}
	case Primop:
		return Primop{t.Op, substEach(n, s, x, t.Args)}
	case Tuple:
		return Tuple(substEach(n, s, x, t))
	case Abs:
		binds, body := substScope(n, s, x, []string{t.Bind}, t.Body)
		return Abs{binds[0], t.Type, body}
	case Rec:
		binds, body := substScope(n, s, x, []string{t.Bind}, t.Body)
		return Rec{binds[0], t.Type, body}
	case Let:
		return substLet(n, s, x, t.Decls, t.Body)
	case App:
		return App{Subst(n, s, x, t.Fn), Subst(n, s, x, t.Arg)}
	}
	panic("unreachable")
}

// SubstAll applies subs to t with the last substitution innermost.
func SubstAll(n *Namer, subs []Substitution, t Term) Term {
	return lo.ReduceRight(subs, func(t Term, sub Substitution, _ int) Term {
		return Subst(n, sub.Term, sub.Name, t)
	}, t)
}

func substEach(n *Namer, s Term, x string, ts []Term) []Term {
	return lo.Map(ts, func(t Term, _ int) Term { return Subst(n, s, x, t) })
}

// substScope substitutes s for x in scope, where binds are bound over scope.
// It returns the possibly renamed binders together with the new scope.
func substScope(n *Namer, s Term, x string, binds []string, scope Term) ([]string, Term) {
	if lo.Contains(binds, x) || !IsFree(x, scope) {
		return binds, scope
	}
	fv := FreeVars(s)
	if !lo.Some(fv, binds) {
		return binds, Subst(n, s, x, scope)
	}
	avoid := lo.Union(fv, FreeVars(scope), binds)
	renamed := append([]string(nil), binds...)
	done := make(map[string]bool)
	// Walk right to left: a repeated name is bound by its last occurrence,
	// earlier occurrences bind nothing in scope.
	for i := len(binds) - 1; i >= 0; i-- {
		b := binds[i]
		if !lo.Contains(fv, b) {
			continue
		}
		renamed[i] = freshName(n, b, avoid)
		if done[b] {
			continue
		}
		done[b] = true
		scope = Subst(n, Var(renamed[i]), b, scope)
	}
	return renamed, Subst(n, s, x, scope)
}

// freshName draws names from n until one is not in avoid. A name minted by
// another Namer, or before a Reset, may already occur in the expression.
func freshName(n *Namer, base string, avoid []string) string {
	for {
		if name := n.Next(base); !lo.Contains(avoid, name) {
			return name
		}
	}
}

// substLet handles let d; rest in body as d binding over let rest in body.
// The declaration's own term lies outside its binders and is substituted
// directly.
func substLet(n *Namer, s Term, x string, decls []Decl, body Term) Let {
	if len(decls) == 0 {
		return Let{decls, Subst(n, s, x, body)}
	}
	d := decls[0]
	binds, scope := substScope(n, s, x, d.Bound(), Let{decls[1:], body})
	rest := scope.(Let)
	d = rebuildDecl(d, Subst(n, s, x, declTerm(d)), binds)
	return Let{prepend(d, rest.Decls), rest.Body}
}

func rebuildDecl(d Decl, t Term, binds []string) Decl {
	switch d.(type) {
	case Val:
		return Val{t, binds[0]}
	case ValTuple:
		return ValTuple{t, binds}
	}
	panic("unreachable")
}

func prepend[T any](v T, from []T) []T {
	return append([]T{v}, from...)
}
