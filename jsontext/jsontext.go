// Package jsontext parses JSON documents with the rule combinator
// engine. The grammar works directly on runes; line and column
// positions ride along as parse context so syntax errors point at the
// offending input. Parsed documents come back as the closed Value sum
// (Scalar, Array, Object) or decoded to native Go values.
package jsontext

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf16"

	"github.com/dhamidi/rulekit/rule"
)

type state = rule.State[rune, Pos]

// Load parses a complete JSON document and decodes it to native Go
// values (map[string]any, []any, string, float64, bool, nil).
func Load(input string) (any, error) {
	v, err := LoadValue(input)
	if err != nil {
		return nil, err
	}
	return Decode(v), nil
}

// LoadValue parses a complete JSON document into its Value tree.
// Malformed or trailing input is reported as a *SyntaxError.
func LoadValue(input string) (Value, error) {
	start := rule.NewState([]rune(input), Pos{Line: 1, Column: 1})
	v, err := rule.Run(document(), start)
	if err != nil {
		return nil, translate(err)
	}
	return v, nil
}

func translate(err error) error {
	var invalid *rule.InvalidInputError[rune, Pos]
	if errors.As(err, &invalid) {
		return &SyntaxError{
			Pos:      invalid.State.Context,
			Expected: "a JSON value",
			Found:    describe(invalid.State.Remainder),
		}
	}
	var leftover *rule.LeftoverInputError[rune, Pos]
	if errors.As(err, &leftover) {
		return &SyntaxError{
			Pos:      leftover.State.Context,
			Expected: "end of input",
			Found:    describe(leftover.State.Remainder),
		}
	}
	return err
}

func document() rule.Rule[rune, Pos, Value] {
	return then(whitespace(), followedBy(rule.Lazy(value), whitespace()))
}

func value() rule.Rule[rune, Pos, Value] {
	return rule.Choice(
		object(),
		array(),
		stringValue(),
		number(),
		rule.ConstantSemantics(keyword("true"), Value(Scalar{Val: true})),
		rule.ConstantSemantics(keyword("false"), Value(Scalar{Val: false})),
		rule.ConstantSemantics(keyword("null"), Value(Scalar{})),
	)
}

func lazyValue() rule.Rule[rune, Pos, Value] {
	return rule.Lazy(value)
}

func object() rule.Rule[rune, Pos, Value] {
	members := rule.Semantics(rule.Optional(memberList()), orEmpty[Member])
	body := then(whitespace(), followedBy(members, must(ch('}'), "'}' or ','")))
	return rule.Semantics(then(ch('{'), body), func(ms []Member) Value {
		return Object{Members: ms}
	})
}

func memberList() rule.Rule[rune, Pos, []Member] {
	rest := rule.RepeatZeroOrMore(
		then(ch(','), then(whitespace(), must(member(), "an object member"))),
	)
	return rule.Bind(member(), func(first Member) rule.Rule[rune, Pos, []Member] {
		return rule.Semantics(rest, func(more []Member) []Member {
			return append([]Member{first}, more...)
		})
	})
}

// member binds the key first; the rest of the rule depends on it to
// build the Member product. Past the key, the colon and the value are
// mandatory.
func member() rule.Rule[rune, Pos, Member] {
	return rule.Bind(followedBy(stringLit(), whitespace()), func(name string) rule.Rule[rune, Pos, Member] {
		valuePart := then(must(ch(':'), "':' after object key"),
			then(whitespace(), must(followedBy(lazyValue(), whitespace()), "a value")))
		return rule.Semantics(valuePart, func(v Value) Member {
			return Member{Name: name, Value: v}
		})
	})
}

func array() rule.Rule[rune, Pos, Value] {
	elems := rule.Semantics(rule.Optional(elementList()), orEmpty[Value])
	body := then(whitespace(), followedBy(elems, must(ch(']'), "']' or ','")))
	return rule.Semantics(then(ch('['), body), func(items []Value) Value {
		return Array{Items: items}
	})
}

func elementList() rule.Rule[rune, Pos, []Value] {
	element := followedBy(lazyValue(), whitespace())
	rest := rule.RepeatZeroOrMore(
		then(ch(','), then(whitespace(), must(element, "a value"))),
	)
	return rule.Bind(element, func(first Value) rule.Rule[rune, Pos, []Value] {
		return rule.Semantics(rest, func(more []Value) []Value {
			return append([]Value{first}, more...)
		})
	})
}

func stringValue() rule.Rule[rune, Pos, Value] {
	return rule.Semantics(stringLit(), func(s string) Value { return Scalar{Val: s} })
}

func stringLit() rule.Rule[rune, Pos, string] {
	body := rule.RepeatZeroOrMore(stringChar())
	closed := followedBy(body, must(ch('"'), `'"' closing the string`))
	return rule.Semantics(then(ch('"'), closed), func(rs []rune) string {
		return string(rs)
	})
}

func stringChar() rule.Rule[rune, Pos, rune] {
	plain := match(func(r rune) bool { return r != '"' && r != '\\' && r >= 0x20 })
	return rule.Choice(escape(), plain)
}

var simpleEscapes = map[rune]rune{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

func escape() rule.Rule[rune, Pos, rune] {
	simple := rule.Semantics(
		match(func(r rune) bool { _, ok := simpleEscapes[r]; return ok }),
		func(r rune) rune { return simpleEscapes[r] },
	)
	body := rule.Choice(unicodeEscape(), simple)
	return then(ch('\\'), must(body, "an escape sequence"))
}

// unicodeEscape decodes \uXXXX. Whether a second escape belongs to
// this one depends on the first unit's decoded value: a high surrogate
// pairs with a following low surrogate, anything else stands alone.
// Unpaired surrogate halves decode to U+FFFD, as encoding/json does.
func unicodeEscape() rule.Rule[rune, Pos, rune] {
	unit := then(ch('u'), must(hexQuad(), "four hex digits"))
	return rule.Bind(unit, func(hi rune) rule.Rule[rune, Pos, rune] {
		if !utf16.IsSurrogate(hi) {
			return rule.Yield[rune, Pos](hi)
		}
		if hi >= 0xDC00 {
			// A low half with no preceding high half.
			return rule.Yield[rune, Pos]('\uFFFD')
		}
		low := rule.Bind(then(ch('\\'), unit), func(lo rune) rule.Rule[rune, Pos, rune] {
			if lo < 0xDC00 || lo > 0xDFFF {
				return decline[rune]()
			}
			return rule.Yield[rune, Pos](utf16.DecodeRune(hi, lo))
		})
		return rule.Semantics(rule.Optional(low), func(r *rune) rune {
			if r == nil {
				return '\uFFFD'
			}
			return *r
		})
	})
}

func hexQuad() rule.Rule[rune, Pos, rune] {
	digit := match(isHexDigit)
	return rule.Semantics(rule.Sequence(digit, digit, digit, digit), func(ds []rune) rune {
		v, _ := strconv.ParseUint(string(ds), 16, 32)
		return rune(v)
	})
}

func isHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

func number() rule.Rule[rune, Pos, Value] {
	digit := match(func(r rune) bool { return r >= '0' && r <= '9' })
	digits := rule.RepeatOneOrMore(digit)
	intPart := rule.Choice(
		single(ch('0')),
		cat(single(match(func(r rune) bool { return r >= '1' && r <= '9' })),
			rule.RepeatZeroOrMore(digit)),
	)
	frac := cat(single(ch('.')), must(digits, "a digit after the decimal point"))
	exponent := cat(
		single(match(func(r rune) bool { return r == 'e' || r == 'E' })),
		optRun(single(match(func(r rune) bool { return r == '+' || r == '-' }))),
		must(digits, "a digit in the exponent"),
	)
	text := cat(optRun(single(ch('-'))), intPart, optRun(frac), optRun(exponent))
	return rule.Semantics(text, func(rs []rune) Value {
		f, _ := strconv.ParseFloat(string(rs), 64)
		return Scalar{Val: f}
	})
}

func keyword(word string) rule.Rule[rune, Pos, []rune] {
	letters := make([]rule.Rule[rune, Pos, rune], 0, len(word))
	for _, c := range word {
		letters = append(letters, ch(c))
	}
	return rule.Sequence(letters...)
}

func whitespace() rule.Rule[rune, Pos, []rune] {
	return rule.RepeatZeroOrMore(match(isSpace))
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Terminal helpers. Every consumed rune routes through advancePos so
// the position context stays accurate without the grammar noticing.

func advancePos(tok rune, p Pos) Pos {
	if tok == '\n' {
		p.Line++
		p.Column = 1
	} else {
		p.Column++
	}
	return p
}

func match(pred func(rune) bool) rule.Rule[rune, Pos, rune] {
	return rule.WithContextUpdate(rule.Term[rune, Pos](pred), advancePos)
}

func ch(c rune) rule.Rule[rune, Pos, rune] {
	return rule.WithContextUpdate(rule.Literal[rune, Pos](c), advancePos)
}

// then discards a's product and continues with b.
func then[A, B any](a rule.Rule[rune, Pos, A], b rule.Rule[rune, Pos, B]) rule.Rule[rune, Pos, B] {
	return rule.Bind(a, func(A) rule.Rule[rune, Pos, B] { return b })
}

// followedBy keeps a's product and requires b after it.
func followedBy[A, B any](a rule.Rule[rune, Pos, A], b rule.Rule[rune, Pos, B]) rule.Rule[rune, Pos, A] {
	return rule.Bind(a, func(v A) rule.Rule[rune, Pos, A] { return rule.ConstantSemantics(b, v) })
}

// must escalates a decline of r into a positioned SyntaxError.
func must[P any](r rule.Rule[rune, Pos, P], expected string) rule.Rule[rune, Pos, P] {
	return rule.Failpoint(r, func(rem []rune, s state) error {
		return &SyntaxError{Pos: s.Context, Expected: expected, Found: describe(rem)}
	})
}

func decline[P any]() rule.Rule[rune, Pos, P] {
	return func(s state) (P, state, error) {
		var zero P
		return zero, s, rule.ErrNoMatch
	}
}

func single(r rule.Rule[rune, Pos, rune]) rule.Rule[rune, Pos, []rune] {
	return rule.Semantics(r, func(c rune) []rune { return []rune{c} })
}

func cat(parts ...rule.Rule[rune, Pos, []rune]) rule.Rule[rune, Pos, []rune] {
	return rule.Semantics(rule.Sequence(parts...), func(groups [][]rune) []rune {
		var out []rune
		for _, g := range groups {
			out = append(out, g...)
		}
		return out
	})
}

func optRun(r rule.Rule[rune, Pos, []rune]) rule.Rule[rune, Pos, []rune] {
	return rule.Semantics(rule.Optional(r), orEmpty[rune])
}

func orEmpty[P any](p *[]P) []P {
	if p == nil {
		return nil
	}
	return *p
}

func describe(rem []rune) string {
	if len(rem) == 0 {
		return "end of input"
	}
	return fmt.Sprintf("%q", rem[0])
}
