package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/rulekit/format"
	"github.com/dhamidi/rulekit/jsontext"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a JSON document and re-encode it",
		Long: `Parse a JSON document and re-encode it to stdout.

If no file is provided, reads the document from stdin. Syntax errors
are reported as file:line:column: message.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, name, err := readInput(args)
			if err != nil {
				return err
			}

			value, err := jsontext.LoadValue(string(source))
			if err != nil {
				return describeError(name, err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "compact":
				encoder = format.NewCompactJSONEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(value); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, compact)")
	return cmd
}

func readInput(args []string) (source []byte, name string, err error) {
	if len(args) == 0 {
		source, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return source, "<stdin>", nil
	}
	name = args[0]
	source, err = os.ReadFile(name)
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}
	return source, name, nil
}

func describeError(name string, err error) error {
	var syn *jsontext.SyntaxError
	if errors.As(err, &syn) {
		return fmt.Errorf("%s:%d:%d: expected %s, found %s",
			name, syn.Pos.Line, syn.Pos.Column, syn.Expected, syn.Found)
	}
	return fmt.Errorf("%s: %w", name, err)
}
