package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/rulekit/checker"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate JSON documents and report issues",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, name := range args {
				source, err := os.ReadFile(name)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				issues := checker.Check(source)
				if len(issues) == 0 {
					continue
				}
				invalid++
				for _, issue := range issues {
					fmt.Fprintf(cmd.OutOrStdout(), "%s:%s\n", name, issue)
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d file(s) invalid", invalid, len(args))
			}
			return nil
		},
	}
}
