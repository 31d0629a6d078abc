package fullrec

type Op uint8

const (
	Equals Op = iota
	LessThan
	Plus
	Minus
	Times
	Negate
)

func (o Op) String() string {
	switch o {
	case Equals:
		return "="
	case LessThan:
		return "<"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Times:
		return "*"
	case Negate:
		return "~"
	}
	panic("unreachable")
}

// signature returns the operand types and result type of o.
func (o Op) signature() ([]Ty, Ty) {
	switch o {
	case Equals, LessThan:
		return []Ty{TyInt{}, TyInt{}}, TyBool{}
	case Plus, Minus, Times:
		return []Ty{TyInt{}, TyInt{}}, TyInt{}
	case Negate:
		return []Ty{TyInt{}}, TyInt{}
	}
	panic("unreachable")
}

// apply computes o over fully evaluated operands. It reports false when the
// operands do not have the shape o expects.
func (o Op) apply(args []Term) (Term, bool) {
	if o == Negate {
		if len(args) != 1 {
			return nil, false
		}
		n, ok := args[0].(Int)
		if !ok {
			return nil, false
		}
		return -n, true
	}
	if len(args) != 2 {
		return nil, false
	}
	l, ok1 := args[0].(Int)
	r, ok2 := args[1].(Int)
	if !ok1 || !ok2 {
		return nil, false
	}
	switch o {
	case Equals:
		return Bool(l == r), true
	case LessThan:
		return Bool(l < r), true
	case Plus:
		return l + r, true
	case Minus:
		return l - r, true
	case Times:
		return l * r, true
	}
	panic("unreachable")
}
