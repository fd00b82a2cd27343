package rule

import (
	"errors"
	"testing"
)

func TestTerm(t *testing.T) {
	isDigit := func(tok string) bool { return tok >= "0" && tok <= "9" }
	digit := Term[string, int](isDigit)

	t.Run("consumes one matching token", func(t *testing.T) {
		p, s, err := digit(input("7", "x"))
		if err != nil {
			t.Fatalf("err = %v, want nil", err)
		}
		if p != "7" {
			t.Errorf("product = %q, want %q", p, "7")
		}
		wantTokens(t, s.Remainder, []string{"x"})
	})

	t.Run("declines without consuming", func(t *testing.T) {
		_, s, err := digit(input("x", "7"))
		if !errors.Is(err, ErrNoMatch) {
			t.Fatalf("err = %v, want ErrNoMatch", err)
		}
		wantTokens(t, s.Remainder, []string{"x", "7"})
	})

	t.Run("declines on empty input", func(t *testing.T) {
		_, s, err := digit(input())
		if !errors.Is(err, ErrNoMatch) {
			t.Fatalf("err = %v, want ErrNoMatch", err)
		}
		if len(s.Remainder) != 0 {
			t.Errorf("remainder = %v, want empty", s.Remainder)
		}
	})
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name  string
		toks  []string
		match bool
	}{
		{"exact token", []string{"if"}, true},
		{"different token", []string{"else"}, false},
		{"empty input", nil, false},
	}

	lit := Literal[string, int]("if")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, err := lit(input(tt.toks...))
			if tt.match {
				if err != nil {
					t.Fatalf("err = %v, want nil", err)
				}
				if p != "if" {
					t.Errorf("product = %q, want %q", p, "if")
				}
				return
			}
			if !errors.Is(err, ErrNoMatch) {
				t.Errorf("err = %v, want ErrNoMatch", err)
			}
		})
	}
}

func TestRegexTerminal(t *testing.T) {
	tests := []struct {
		tok   string
		match bool
	}{
		{"123", true},
		{"0", true},
		{"12a", false}, // full match only, not a prefix match
		{"a12", false},
		{"", false},
	}

	num := RegexTerminal[string, int](`[0-9]+`)
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			_, _, err := num(input(tt.tok))
			if got := err == nil; got != tt.match {
				t.Errorf("match = %v, want %v (err %v)", got, tt.match, err)
			}
		})
	}
}

func TestSemantics(t *testing.T) {
	double := Semantics(anyToken(), func(tok string) string { return tok + tok })

	t.Run("transforms product", func(t *testing.T) {
		p, s, err := double(input("ab", "rest"))
		if err != nil {
			t.Fatalf("err = %v, want nil", err)
		}
		if p != "abab" {
			t.Errorf("product = %q, want %q", p, "abab")
		}
		wantTokens(t, s.Remainder, []string{"rest"})
	})

	t.Run("decline passes through", func(t *testing.T) {
		r := Semantics(Term[string, int](never), func(string) string { return "unused" })
		_, s, err := r(input("a"))
		if !errors.Is(err, ErrNoMatch) {
			t.Fatalf("err = %v, want ErrNoMatch", err)
		}
		wantTokens(t, s.Remainder, []string{"a"})
	})

	t.Run("failure passes through", func(t *testing.T) {
		r := Semantics(failing("broken"), func(string) string { return "unused" })
		_, _, err := r(input("a"))
		if err == nil || errors.Is(err, ErrNoMatch) {
			t.Errorf("err = %v, want hard failure", err)
		}
	})
}

func TestConstantSemantics(t *testing.T) {
	r := ConstantSemantics(Literal[string, int]("null"), 42)
	p, s, err := r(input("null", "x"))
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if p != 42 {
		t.Errorf("product = %d, want 42", p)
	}
	wantTokens(t, s.Remainder, []string{"x"})
}
