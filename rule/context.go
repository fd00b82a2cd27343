package rule

// WithContextUpdate runs the sub-rule and, on a match, rewrites the
// resulting state's context with update, which receives the product
// read-only. Remainder and product are untouched, so position
// bookkeeping layered over terminal matchers stays invisible to the
// rules composed above them. Layered updates apply innermost first.
func WithContextUpdate[T, C, P any](r Rule[T, C, P], update func(P, C) C) Rule[T, C, P] {
	return func(s State[T, C]) (P, State[T, C], error) {
		p, next, err := r(s)
		if err != nil {
			return p, next, err
		}
		next.Context = update(p, next.Context)
		return p, next, nil
	}
}
