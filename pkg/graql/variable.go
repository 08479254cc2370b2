// Package graql models the structured form of write queries: variables, the
// properties attached to them, statements, queries and their answers.
package graql

import (
	"cmp"
	"strconv"
	"strings"
	"sync/atomic"
)

var anonymousCounter atomic.Uint64

// Variable is a placeholder bound to exactly one concept once a query has run.
// User defined variables are returned in answers, anonymous ones are not.
type Variable struct {
	name      string
	anonymous bool
}

// Var returns the user defined variable with the given name. A leading '$' is ignored.
func Var(name string) Variable {
	return Variable{name: strings.TrimPrefix(name, "$")}
}

// AnonymousVar returns a fresh system generated variable.
func AnonymousVar() Variable {
	n := anonymousCounter.Add(1)
	return Variable{name: "_" + strconv.FormatUint(n, 10), anonymous: true}
}

// Name returns the name without the leading '$'.
func (v Variable) Name() string {
	return v.name
}

// IsUserDefined reports whether v was named by the query author.
func (v Variable) IsUserDefined() bool {
	return !v.anonymous
}

// IsZero reports whether v is the zero Variable.
func (v Variable) IsZero() bool {
	return v.name == ""
}

func (v Variable) String() string {
	return "$" + v.name
}

// CompareVars orders variables by name, user defined before anonymous on a tie.
func CompareVars(a, b Variable) int {
	if c := cmp.Compare(a.name, b.name); c != 0 {
		return c
	}
	switch {
	case a.anonymous == b.anonymous:
		return 0
	case a.anonymous:
		return 1
	default:
		return -1
	}
}
