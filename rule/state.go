package rule

// State is an immutable-per-step snapshot of a parse: the unconsumed
// token suffix plus an auxiliary context (line and column counters,
// grammar-specific flags). States are passed by value; advancing
// re-slices Remainder and never writes through it. The context type C
// must itself have value semantics for that guarantee to hold.
type State[T, C any] struct {
	Remainder []T
	Context   C
}

// NewState builds the initial state for a parse.
func NewState[T, C any](tokens []T, ctx C) State[T, C] {
	return State[T, C]{Remainder: tokens, Context: ctx}
}

func (s State[T, C]) advance(n int) State[T, C] {
	s.Remainder = s.Remainder[n:]
	return s
}
