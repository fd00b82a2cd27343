package format

import (
	"bytes"
	"testing"

	"github.com/dhamidi/rulekit/jsontext"
)

func TestJSONEncoder(t *testing.T) {
	value := jsontext.Object{Members: []jsontext.Member{
		{Name: "ok", Value: jsontext.Scalar{Val: true}},
		{Name: "n", Value: jsontext.Scalar{Val: 1.0}},
	}}

	t.Run("indented", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewJSONEncoder(&buf).Encode(value); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		want := "{\n  \"n\": 1,\n  \"ok\": true\n}\n"
		if got := buf.String(); got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})

	t.Run("compact", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewCompactJSONEncoder(&buf).Encode(value); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		want := `{"n":1,"ok":true}` + "\n"
		if got := buf.String(); got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})
}

func TestJSONEncoderScalar(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCompactJSONEncoder(&buf).Encode(jsontext.Scalar{Val: "hi"}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := buf.String(); got != "\"hi\"\n" {
		t.Errorf("output = %q, want %q", got, "\"hi\"\n")
	}
}
