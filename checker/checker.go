// Package checker validates JSON documents and reports positioned
// issues, both through a plain API and over the Language Server
// Protocol.
package checker

import (
	"errors"
	"fmt"

	"github.com/dhamidi/rulekit/jsontext"
)

// Issue is one problem found in a document. Line and Column are
// 1-based.
type Issue struct {
	Line    int
	Column  int
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%d:%d: %s", i.Line, i.Column, i.Message)
}

// Check parses content as a JSON document and returns the issues
// found. A nil result means the document is valid. Parsing stops at
// the first error, so at most one issue is reported per call.
func Check(content []byte) []Issue {
	_, err := jsontext.LoadValue(string(content))
	if err == nil {
		return nil
	}
	var syn *jsontext.SyntaxError
	if errors.As(err, &syn) {
		return []Issue{{
			Line:    syn.Pos.Line,
			Column:  syn.Pos.Column,
			Message: fmt.Sprintf("expected %s, found %s", syn.Expected, syn.Found),
		}}
	}
	return []Issue{{Line: 1, Column: 1, Message: err.Error()}}
}
