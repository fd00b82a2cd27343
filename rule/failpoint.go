package rule

import "errors"

// Failpoint escalates a decline of the sub-rule into a hard failure
// built by fail, which receives the unconsumed remainder and the state
// at the point of failure. Use it where the grammar context already
// matched makes backtracking meaningless: after an opening bracket the
// closing bracket is mandatory, and its absence means the document is
// malformed rather than that another alternative should be tried.
// Matches and failures of the sub-rule pass through verbatim. The
// callback's error must not wrap ErrNoMatch.
func Failpoint[T, C, P any](r Rule[T, C, P], fail func(remainder []T, s State[T, C]) error) Rule[T, C, P] {
	return func(s State[T, C]) (P, State[T, C], error) {
		p, next, err := r(s)
		if err != nil && errors.Is(err, ErrNoMatch) {
			var zero P
			return zero, s, fail(s.Remainder, s)
		}
		return p, next, err
	}
}
