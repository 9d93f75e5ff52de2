// Command quatcalc evaluates quaternion expressions.
//
//	quatcalc eval "q = 1+2i" "q*j" "conj(q)"
//	quatcalc repl
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hamilton/calc"
	"hamilton/internal/buildinfo"
	"hamilton/internal/config"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "quatcalc",
	Short: "Quaternion calculator",
	Long: `quatcalc evaluates expressions over quaternions a+bi+cj+dk.

Supported: + - * (Hamilton product), parentheses, variables (x = ...),
conj(q), norm2(q), quat(a, b, c, d) and attribute reads such as q.a.
Results print in canonical form, e.g. 1.0-2.0i+4.0k.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval EXPR...",
	Short: "Evaluate expressions in one session and print each result",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEval,
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read statements from stdin line by line",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.Long())
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(evalCmd, replCmd, versionCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	c.ApplyEnv(os.LookupEnv)
	if verbose {
		c.Log.Level = "debug"
	}
	if err := c.Validate(); err != nil {
		return err
	}

	zc, err := c.ZapConfig()
	if err != nil {
		return err
	}
	l, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, logger = c, l
	return nil
}

// newSession returns a session with the configured variables bound.
func newSession() (*calc.Session, error) {
	s := calc.NewSession(calc.WithLogger(logger))
	for _, name := range cfg.VarNames() {
		res, err := s.Exec(cfg.Vars[name])
		if err != nil {
			return nil, fmt.Errorf("config var %s: %w", name, err)
		}
		if len(res) == 0 {
			return nil, fmt.Errorf("config var %s: empty expression", name)
		}
		if err := s.Set(name, res[len(res)-1].Value); err != nil {
			return nil, fmt.Errorf("config var %s: %w", name, err)
		}
	}
	logger.Debug("session ready", zap.Strings("vars", s.Names()))
	return s, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
