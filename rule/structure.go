package rule

import "errors"

// Sequence applies each sub-rule left to right, threading state
// forward, and collects their products in order. If any sub-rule
// declines, the whole sequence declines with the original input state;
// no partial consumption is observable. Failures abort the remaining
// sub-rules.
func Sequence[T, C, P any](rules ...Rule[T, C, P]) Rule[T, C, []P] {
	return func(s State[T, C]) ([]P, State[T, C], error) {
		products := make([]P, 0, len(rules))
		cur := s
		for _, r := range rules {
			p, next, err := r(cur)
			if err != nil {
				if errors.Is(err, ErrNoMatch) {
					return nil, s, ErrNoMatch
				}
				return nil, next, err
			}
			products = append(products, p)
			cur = next
		}
		return products, cur, nil
	}
}

// Choice tries each sub-rule in listed order against the same input
// state and commits to the first one that does not decline, whether it
// matched or failed. Declaration order resolves ambiguity; there is no
// longest-match heuristic. Choice declines only if every alternative
// declines.
func Choice[T, C, P any](rules ...Rule[T, C, P]) Rule[T, C, P] {
	return func(s State[T, C]) (P, State[T, C], error) {
		for _, r := range rules {
			p, next, err := r(s)
			if err == nil || !errors.Is(err, ErrNoMatch) {
				return p, next, err
			}
		}
		var zero P
		return zero, s, ErrNoMatch
	}
}

// Optional turns a decline into a match with a nil product and an
// unchanged state. Matches and failures pass through verbatim; an
// optional rule never declines.
func Optional[T, C, P any](r Rule[T, C, P]) Rule[T, C, *P] {
	return func(s State[T, C]) (*P, State[T, C], error) {
		p, next, err := r(s)
		if err == nil {
			return &p, next, nil
		}
		if errors.Is(err, ErrNoMatch) {
			return nil, s, nil
		}
		return nil, next, err
	}
}

// RepeatZeroOrMore applies the sub-rule to the evolving state until it
// declines, collecting the products. The failed attempt's effect on
// state is discarded. Zero matches is a match with an empty product
// list and the input state unchanged. A sub-match that consumes no
// tokens is collected once and ends the repetition, so a
// zero-consumption sub-rule cannot loop forever. Failures propagate
// and discard the products collected so far.
func RepeatZeroOrMore[T, C, P any](r Rule[T, C, P]) Rule[T, C, []P] {
	return func(s State[T, C]) ([]P, State[T, C], error) {
		var products []P
		cur := s
		for {
			p, next, err := r(cur)
			if err != nil {
				if errors.Is(err, ErrNoMatch) {
					return products, cur, nil
				}
				return nil, next, err
			}
			products = append(products, p)
			if len(next.Remainder) == len(cur.Remainder) {
				return products, next, nil
			}
			cur = next
		}
	}
}

// RepeatOneOrMore is RepeatZeroOrMore, except that zero matches is a
// decline.
func RepeatOneOrMore[T, C, P any](r Rule[T, C, P]) Rule[T, C, []P] {
	zeroOrMore := RepeatZeroOrMore(r)
	return func(s State[T, C]) ([]P, State[T, C], error) {
		products, next, err := zeroOrMore(s)
		if err != nil {
			return nil, next, err
		}
		if len(products) == 0 {
			return nil, s, ErrNoMatch
		}
		return products, next, nil
	}
}

// LiteralSequence matches an exact ordered run of literal tokens and
// yields them as a slice.
func LiteralSequence[T comparable, C any](tokens ...T) Rule[T, C, []T] {
	rules := make([]Rule[T, C, T], len(tokens))
	for i, tok := range tokens {
		rules[i] = Literal[T, C](tok)
	}
	return Sequence(rules...)
}
