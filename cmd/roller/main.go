// Package main provides the interactive dice roller binary.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nicholasturner1/dnd-roller/internal/config"
	"github.com/nicholasturner1/dnd-roller/internal/dice"
	"github.com/nicholasturner1/dnd-roller/internal/observability"
	"github.com/nicholasturner1/dnd-roller/internal/preset"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "roller",
	Short: "Interactive evaluator for tabletop dice-roll expressions",
	Long: "roller reads dice expressions such as \"2d6+3-1d4\" from stdin,\n" +
		"rolls them, and prints a per-die trace with the total.\n" +
		"A blank line ends the session.",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Version = version + " (commit=" + commit + ")"
	rootCmd.SetVersionTemplate("roller version {{.Version}}\n")

	rootCmd.Flags().String("config", "", "path to configuration file (optional)")
	rootCmd.Flags().Int64("seed", 0, "deterministic random seed; 0 uses crypto randomness")
	rootCmd.Flags().String("presets", "", "path to a YAML file of named roll presets")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if v, _ := cmd.Flags().GetInt64("seed"); v != 0 {
		cfg.Roller.Seed = v
	}
	if v, _ := cmd.Flags().GetString("presets"); v != "" {
		cfg.Roller.PresetsFile = v
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	src := dice.NewCryptoSource()
	if cfg.Roller.Seed != 0 {
		src = dice.NewSeededSource(cfg.Roller.Seed)
		logger.Info("using seeded random source", zap.Int64("seed", cfg.Roller.Seed))
	}
	roller := dice.NewRoller(src, logger)

	var presets *preset.Table
	if cfg.Roller.PresetsFile != "" {
		presets, err = preset.LoadFromFile(cfg.Roller.PresetsFile)
		if err != nil {
			logger.Fatal("loading presets", zap.Error(err))
		}
		logger.Info("presets loaded",
			zap.String("file", cfg.Roller.PresetsFile),
			zap.Strings("names", presets.Names()),
		)
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	return repl(os.Stdin, os.Stdout, cfg.Roller.Prompt, interactive, roller, presets)
}

// repl reads expressions line by line until a blank line or EOF. Each
// successful roll prints "rendered = total" followed by a blank line;
// malformed expressions are reported and the loop resumes.
func repl(in io.Reader, out io.Writer, prompt string, interactive bool, roller *dice.Roller, presets *preset.Table) error {
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprintln(out, prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return nil
		}
		if presets != nil {
			if expr, ok := presets.Resolve(line); ok {
				line = expr
			}
		}

		res, err := roller.Evaluate(line)
		if err != nil {
			fmt.Fprintf(out, "%v\n\n", err)
			continue
		}
		fmt.Fprintf(out, "%s = %d\n\n", res.Rendered, res.Total)
	}
}
