package rule

import (
	"errors"
	"fmt"
	"testing"
)

func TestFailpointEscalatesDecline(t *testing.T) {
	r := Failpoint(Literal[string, int]("}"), func(rem []string, s State[string, int]) error {
		return fmt.Errorf("expected '}', found %q", rem[0])
	})

	_, _, err := r(input("x"))
	if err == nil || errors.Is(err, ErrNoMatch) {
		t.Fatalf("err = %v, want hard failure", err)
	}
	if got, want := err.Error(), `expected '}', found "x"`; got != want {
		t.Errorf("err = %q, want %q", got, want)
	}
}

func TestFailpointMatchPassesThrough(t *testing.T) {
	called := false
	r := Failpoint(Literal[string, int]("}"), func([]string, State[string, int]) error {
		called = true
		return errors.New("unreachable")
	})

	p, s, err := r(input("}", "x"))
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if p != "}" {
		t.Errorf("product = %q, want %q", p, "}")
	}
	wantTokens(t, s.Remainder, []string{"x"})
	if called {
		t.Errorf("error callback ran on a successful match")
	}
}

func TestFailpointCallbackSeesFailureState(t *testing.T) {
	var seen []string
	r := Sequence(
		Literal[string, int]("("),
		Failpoint(Literal[string, int](")"), func(rem []string, s State[string, int]) error {
			seen = rem
			return errors.New("missing close paren")
		}),
	)

	_, _, err := r(input("(", "x", "y"))
	if err == nil {
		t.Fatalf("err = nil, want hard failure")
	}
	wantTokens(t, seen, []string{"x", "y"})
}

func TestEscalationShortCircuitsChoice(t *testing.T) {
	// The second alternative would match the input, but the first
	// alternative escalated, so it must never be consulted.
	r := Choice(
		Failpoint(Term[string, int](never), func([]string, State[string, int]) error {
			return errors.New("definitively malformed")
		}),
		Literal[string, int]("x"),
	)

	_, _, err := r(input("x"))
	if err == nil || errors.Is(err, ErrNoMatch) {
		t.Fatalf("err = %v, want hard failure", err)
	}
	if err.Error() != "definitively malformed" {
		t.Errorf("err = %q, want the escalated error", err.Error())
	}
}

func TestEscalationShortCircuitsRepetition(t *testing.T) {
	r := RepeatZeroOrMore(failing("broken"))
	_, _, err := r(input("a", "a"))
	if err == nil || errors.Is(err, ErrNoMatch) {
		t.Errorf("err = %v, want hard failure", err)
	}
}
