package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/rulekit/jsontext"
)

// JSONEncoder re-encodes a parsed value with encoding/json: two-space
// indentation by default, single-line output in compact mode.
type JSONEncoder struct {
	w       io.Writer
	value   jsontext.Value
	compact bool
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func NewCompactJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w, compact: true}
}

func (e *JSONEncoder) Encode(v jsontext.Value) error {
	e.value = v
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := jsontext.Decode(e.value)
	if e.compact {
		return json.Marshal(data)
	}
	return json.MarshalIndent(data, "", "  ")
}
