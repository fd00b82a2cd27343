package rule

import (
	"errors"
	"fmt"
)

// InvalidInputError reports that the root rule declined at the very
// start. State is the initial state, untouched.
type InvalidInputError[T, C any] struct {
	State State[T, C]
}

func (e *InvalidInputError[T, C]) Error() string {
	return "input does not match the grammar"
}

// LeftoverInputError reports that the root rule matched a prefix of
// the input but tokens remain. State is the final state; its remainder
// holds the unconsumed suffix.
type LeftoverInputError[T, C any] struct {
	State State[T, C]
}

func (e *LeftoverInputError[T, C]) Error() string {
	return fmt.Sprintf("%d unconsumed token(s) after a valid prefix", len(e.State.Remainder))
}

// Run applies the root rule to the initial state and classifies the
// outcome: the product on a full match, *InvalidInputError when the
// root declines, *LeftoverInputError on a partial match, and escalated
// failures as-is. Run only classifies; rendering the errors is the
// caller's job.
func Run[T, C, P any](root Rule[T, C, P], initial State[T, C]) (P, error) {
	var zero P
	product, final, err := root(initial)
	if err != nil {
		if errors.Is(err, ErrNoMatch) {
			return zero, &InvalidInputError[T, C]{State: initial}
		}
		return zero, err
	}
	if len(final.Remainder) > 0 {
		return zero, &LeftoverInputError[T, C]{State: final}
	}
	return product, nil
}
