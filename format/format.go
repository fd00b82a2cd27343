package format

import (
	"encoding"

	"github.com/dhamidi/rulekit/jsontext"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(v jsontext.Value) error
}
