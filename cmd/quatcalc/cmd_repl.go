package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runRepl(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	sc := bufio.NewScanner(cmd.InOrStdin())

	lines := 0
	for {
		if cfg.Prompt != "" {
			fmt.Fprint(out, cfg.Prompt)
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines++
		res, err := s.Exec(line)
		printResults(out, res)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
	if cfg.Prompt != "" {
		fmt.Fprintln(out)
	}
	logger.Debug("repl finished", zap.Int("lines", lines))
	return sc.Err()
}
