package fullrec

import (
	"github.com/pkg/errors"
)

var (
	// ErrDepthExceeded is returned when evaluation nests deeper, or runs
	// longer, than the limit configured with WithMaxDepth or WithMaxSteps.
	ErrDepthExceeded = errors.New("evaluation limit exceeded")

	// ErrNoRuleApplies is returned by Step when its argument is a value.
	ErrNoRuleApplies = errors.New("no rule applies")

	errUnbound = errors.New("unbound name")
)

// TypeError reports a static type mismatch or a free variable. Expected and
// Found are nil when the error carries only a message.
type TypeError struct {
	Msg      string
	Expected Ty
	Found    Ty
	// Err is the underlying cause, if any.
	Err error
}

func (e *TypeError) Error() string {
	switch {
	case e.Expected != nil && e.Found != nil:
		return "type error: " + e.Msg + ": expected " + e.Expected.String() + ", found " + e.Found.String()
	case e.Found != nil:
		return "type error: " + e.Msg + ": found " + e.Found.String()
	}
	return "type error: " + e.Msg
}

func (e *TypeError) Unwrap() error {
	return e.Err
}

// StuckError reports a term with no applicable reduction rule. A closed term
// that type checks never produces one.
type StuckError struct {
	Msg  string
	Term Term
}

func (e *StuckError) Error() string {
	return "stuck: " + e.Msg + ": " + e.Term.String()
}

func stuck(t Term, msg string) error {
	return &StuckError{Msg: msg, Term: t}
}
