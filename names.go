package fullrec

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Namer mints binder names that are distinct from every other name it has
// minted. A minted name is the decimal counter followed by the base name with
// any leading digits removed, so "z" becomes "1z" and "1z" later becomes "2z".
// Identifiers written by a front end must not start with a digit; that is
// what keeps minted names apart from user names.
//
// A Namer is safe for concurrent use. It is never reset implicitly.
type Namer struct {
	n atomic.Uint64
}

func NewNamer() *Namer {
	return new(Namer)
}

// Next returns a fresh name derived from base.
func (n *Namer) Next(base string) string {
	base = strings.TrimLeft(base, "0123456789")
	return strconv.FormatUint(n.n.Add(1), 10) + base
}

// Reset restarts the counter. Names minted before and after a reset may
// collide, so only reset between unrelated runs.
func (n *Namer) Reset() {
	n.n.Store(0)
}
