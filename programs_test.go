package fullrec

func plus(a, b Term) Term  { return Primop{Plus, []Term{a, b}} }
func minus(a, b Term) Term { return Primop{Minus, []Term{a, b}} }
func times(a, b Term) Term { return Primop{Times, []Term{a, b}} }
func less(a, b Term) Term  { return Primop{LessThan, []Term{a, b}} }
func equals(a, b Term) Term {
	return Primop{Equals, []Term{a, b}}
}

var (
	intToInt = TyArr{TyInt{}, TyInt{}}

	fact = Rec{"fact", intToInt, Abs{"n", TyInt{}, If{
		less(Var("n"), Int(1)),
		Int(1),
		times(Var("n"), App{Var("fact"), minus(Var("n"), Int(1))}),
	}}}

	loop = Rec{"loop", intToInt, Abs{"n", TyInt{}, App{Var("loop"), Var("n")}}}
)

// wellTyped are closed programs that type check and terminate.
var wellTyped = []struct {
	name string
	term Term
}{
	{"apply_inc", App{Abs{"x", TyInt{}, plus(Var("x"), Int(1))}, Int(5)}},
	{"let_single", Let{[]Decl{Val{Int(3), "y"}}, plus(Var("y"), Int(1))}},
	{"let_tuple", Let{[]Decl{ValTuple{Tuple{Int(3), Int(4)}, []string{"a", "b"}}}, plus(Var("a"), Var("b"))}},
	{"factorial", App{fact, Int(5)}},
	{"shadowing", Let{[]Decl{Val{Int(1), "x"}, Val{plus(Var("x"), Int(1)), "x"}}, times(Var("x"), Int(10))}},
	{"curried", App{App{Abs{"x", TyInt{}, Abs{"y", TyInt{}, minus(Var("x"), Var("y"))}}, Int(10)}, Int(3)}},
	{"swap", Let{[]Decl{ValTuple{Tuple{Int(1), Bool(true)}, []string{"a", "b"}}}, Tuple{Var("b"), Var("a")}}},
	{"non_strict", App{Abs{"x", TyInt{}, Int(0)}, App{loop, Int(1)}}},
	{"negate", Primop{Negate, []Term{minus(Int(2), Int(5))}}},
	{"unit", Let{[]Decl{ValTuple{Tuple{}, []string{}}}, Tuple{}}},
	{"returns_function", App{Abs{"x", TyInt{}, Abs{"y", TyInt{}, plus(Var("x"), Var("y"))}}, Int(2)}},
	{"higher_order", Abs{"f", intToInt, App{Var("f"), Int(1)}}},
	{"conditional", If{equals(Int(2), plus(Int(1), Int(1))), Tuple{Int(1), Bool(false)}, Tuple{Int(0), Bool(true)}}},
}

// illTyped are closed programs rejected by the type checker.
var illTyped = []struct {
	name string
	term Term
}{
	{"branch_mismatch", If{Bool(true), Int(1), Bool(false)}},
	{"tuple_arity", Let{[]Decl{ValTuple{Tuple{Int(3), Int(4)}, []string{"a", "b", "c"}}}, Var("a")}},
	{"free_variable", Var("x")},
	{"apply_non_function", App{Int(1), Int(2)}},
}
