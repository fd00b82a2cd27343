package rule

import "errors"

// Bind composes two steps where the second rule is chosen from the
// first step's product, which plain Sequence cannot express. If either
// step declines, the whole derivation declines with the state from
// before the first step. Failures propagate as-is.
func Bind[T, C, P, Q any](r Rule[T, C, P], step func(P) Rule[T, C, Q]) Rule[T, C, Q] {
	return func(s State[T, C]) (Q, State[T, C], error) {
		var zero Q
		p, mid, err := r(s)
		if err != nil {
			if errors.Is(err, ErrNoMatch) {
				return zero, s, ErrNoMatch
			}
			return zero, mid, err
		}
		q, end, err := step(p)(mid)
		if err != nil {
			if errors.Is(err, ErrNoMatch) {
				return zero, s, ErrNoMatch
			}
			return zero, end, err
		}
		return q, end, nil
	}
}

// Yield matches without consuming anything and produces v. It closes a
// Bind chain by computing the overall product from the bound names.
func Yield[T, C, P any](v P) Rule[T, C, P] {
	return func(s State[T, C]) (P, State[T, C], error) {
		return v, s, nil
	}
}
