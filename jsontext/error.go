package jsontext

import "fmt"

// Pos is a 1-based line and column position in the document, tracked
// as auxiliary parse context alongside every consumed rune.
type Pos struct {
	Line   int
	Column int
}

// SyntaxError reports a malformed document with the position of the
// offending input, what the grammar required there, and what was
// found instead.
type SyntaxError struct {
	Pos      Pos
	Expected string
	Found    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: expected %s, found %s",
		e.Pos.Line, e.Pos.Column, e.Expected, e.Found)
}
