package rule

import "errors"

// ErrNoMatch is the decline sentinel. A rule returning an error that
// matches ErrNoMatch has consumed nothing and invites the caller to
// try an alternative. Errors constructed for Failpoint callbacks must
// not wrap ErrNoMatch, or escalation would be undone by Choice.
var ErrNoMatch = errors.New("rule did not match")

// Rule consumes a prefix of the state's remainder and produces a
// product of type P. See the package documentation for the three
// possible outcomes.
type Rule[T, C, P any] func(State[T, C]) (P, State[T, C], error)

// Lazy defers rule construction until match time, tying the knot for
// recursive grammars that cannot reference themselves during
// initialization.
func Lazy[T, C, P any](build func() Rule[T, C, P]) Rule[T, C, P] {
	return func(s State[T, C]) (P, State[T, C], error) {
		return build()(s)
	}
}
