package rule

import "regexp"

// Term matches exactly one token satisfying pred. The product is the
// token itself. Term never looks past the first token of the
// remainder.
func Term[T, C any](pred func(T) bool) Rule[T, C, T] {
	return func(s State[T, C]) (T, State[T, C], error) {
		if len(s.Remainder) == 0 || !pred(s.Remainder[0]) {
			var zero T
			return zero, s, ErrNoMatch
		}
		return s.Remainder[0], s.advance(1), nil
	}
}

// Literal matches exactly one token equal to want.
func Literal[T comparable, C any](want T) Rule[T, C, T] {
	return Term[T, C](func(tok T) bool { return tok == want })
}

// RegexTerminal matches one token whose full text matches pattern.
// The pattern is compiled once at construction; an invalid pattern is
// a programming error and panics.
func RegexTerminal[T ~string, C any](pattern string) Rule[T, C, T] {
	re := regexp.MustCompile(`\A(?:` + pattern + `)\z`)
	return Term[T, C](func(tok T) bool { return re.MatchString(string(tok)) })
}

// Semantics applies transform to the product of a successful match.
// Declines and failures pass through untouched. The transform must
// be pure with respect to parsing state.
func Semantics[T, C, P, Q any](r Rule[T, C, P], transform func(P) Q) Rule[T, C, Q] {
	return func(s State[T, C]) (Q, State[T, C], error) {
		p, next, err := r(s)
		if err != nil {
			var zero Q
			return zero, next, err
		}
		return transform(p), next, nil
	}
}

// ConstantSemantics replaces the product of a successful match with v.
func ConstantSemantics[T, C, P, Q any](r Rule[T, C, P], v Q) Rule[T, C, Q] {
	return Semantics(r, func(P) Q { return v })
}
