package fullrec

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Term is an expression of the calculus. Terms are never mutated once built;
// every transformation returns a new tree that may share untouched subtrees
// with its input.
type Term interface {
	isTerm()
	String() string
}

type Int int

func (Int) isTerm() {}

func (i Int) String() string {
	return strconv.Itoa(int(i))
}

type Bool bool

func (Bool) isTerm() {}

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

type If struct {
	Cond Term
	Body Term
	Else Term
}

func (If) isTerm() {}

func (i If) String() string {
	return "if " + i.Cond.String() + " then " + i.Body.String() + " else " + i.Else.String()
}

type Primop struct {
	Op   Op
	Args []Term
}

func (Primop) isTerm() {}

func (p Primop) String() string {
	if len(p.Args) == 2 {
		return "(" + p.Args[0].String() + " " + p.Op.String() + " " + p.Args[1].String() + ")"
	}
	return p.Op.String() + "(" + joinTerms(p.Args) + ")"
}

type Tuple []Term

func (Tuple) isTerm() {}

func (t Tuple) String() string {
	if len(t) == 1 {
		return "(" + t[0].String() + ",)"
	}
	return "(" + joinTerms(t) + ")"
}

// Abs is a function abstraction λBind:Type.Body.
type Abs struct {
	Bind string
	Type Ty
	Body Term
}

func (Abs) isTerm() {}

func (a Abs) String() string {
	return "(λ" + a.Bind + ":" + a.Type.String() + "." + a.Body.String() + ")"
}

// Rec is a recursive value: Bind refers to the Rec itself inside Body.
type Rec struct {
	Bind string
	Type Ty
	Body Term
}

func (Rec) isTerm() {}

func (r Rec) String() string {
	return "(rec " + r.Bind + ":" + r.Type.String() + "." + r.Body.String() + ")"
}

type Let struct {
	Decls []Decl
	Body  Term
}

func (Let) isTerm() {}

func (l Let) String() string {
	if len(l.Decls) == 0 {
		return "let in " + l.Body.String()
	}
	decls := lo.Map(l.Decls, func(d Decl, _ int) string { return d.String() })
	return "let " + strings.Join(decls, "; ") + " in " + l.Body.String()
}

type App struct {
	Fn  Term
	Arg Term
}

func (App) isTerm() {}

func (a App) String() string {
	return "(" + a.Fn.String() + " " + a.Arg.String() + ")"
}

type Var string

func (Var) isTerm() {}

func (v Var) String() string {
	return string(v)
}

// Decl is a single declaration of a Let.
type Decl interface {
	isDecl()
	// Bound returns the names the declaration brings into scope.
	Bound() []string
	String() string
}

type Val struct {
	Term Term
	Bind string
}

func (Val) isDecl() {}

func (v Val) Bound() []string { return []string{v.Bind} }

func (v Val) String() string {
	return v.Bind + "=" + v.Term.String()
}

// ValTuple destructures a tuple into Binds, one name per component.
type ValTuple struct {
	Term  Term
	Binds []string
}

func (ValTuple) isDecl() {}

func (v ValTuple) Bound() []string { return v.Binds }

func (v ValTuple) String() string {
	return "(" + strings.Join(v.Binds, ", ") + ")=" + v.Term.String()
}

func joinTerms(ts []Term) string {
	return strings.Join(lo.Map(ts, func(t Term, _ int) string { return t.String() }), ", ")
}

func isVal(t Term) bool {
	switch t := t.(type) {
	case Int, Bool, Abs:
		return true
	case Tuple:
		return lo.EveryBy(t, isVal)
	default:
		return false
	}
}
