package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hamilton/calc"
)

func runEval(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, src := range args {
		res, err := s.Exec(src)
		printResults(out, res)
		if err != nil {
			return fmt.Errorf("%q: %w", src, err)
		}
	}
	return nil
}

// printResults writes the value of every expression statement, one per
// line. Assignments print nothing.
func printResults(w io.Writer, res []calc.Result) {
	for _, r := range res {
		if r.Kind == calc.ResultValue {
			fmt.Fprintln(w, r.Value)
		}
	}
}
