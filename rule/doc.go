// Package rule implements a small parser-combinator algebra over
// caller-defined token sequences.
//
// # Overview
//
// A Rule is a pure function from a parse State to a product, a new
// state, and an error. Rules are built bottom-up from terminal matchers
// (Term, Literal, RegexTerminal) and composed with structural
// combinators (Sequence, Choice, Optional, RepeatZeroOrMore,
// RepeatOneOrMore), semantic transforms (Semantics,
// ConstantSemantics), data-dependent derivation (Bind, Yield), and
// error escalation (Failpoint). The Run driver applies a root rule to
// an initial state and classifies the outcome.
//
// # Results
//
// Every rule application has one of three outcomes:
//
//   - matched: a nil error; the returned state's remainder is the
//     unconsumed suffix of the input remainder.
//   - declined: an error matching ErrNoMatch; the returned state is
//     the input state, untouched. Choice and the repetition
//     combinators recover from declines by trying the next
//     alternative or ending the repetition.
//   - failed: any other error. Failures propagate through every
//     combinator without being caught; only the caller of Run sees
//     them. Use Failpoint to turn a decline into a failure at
//     positions where backtracking is no longer meaningful.
//
// # State
//
// State is a value type holding the remaining tokens and an auxiliary
// context of any value-semantics type. Advancing re-slices the
// remainder and never mutates, so a state held before an attempted
// match stays valid after the attempt fails. Context fields change
// only through WithContextUpdate; matching alone never touches them.
//
// # Example
//
//	ab := rule.Sequence(
//	    rule.Literal[string, struct{}]("a"),
//	    rule.Literal[string, struct{}]("b"),
//	)
//	product, err := rule.Run(ab, rule.NewState([]string{"a", "b"}, struct{}{}))
//	// product == []string{"a", "b"}
//
// # Thread Safety
//
// Rules are stateless and states are values; a compiled rule may be
// shared freely across goroutines running independent parses.
package rule
