// Package main provides the xyplug-ai CLI entry point.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pixlcore/xyplug-ai/config"
	"github.com/pixlcore/xyplug-ai/plugin"
)

var (
	// Global flags
	quiet   bool
	verbose bool
	envFile string
)

func main() {
	execute(newRootCmd(), os.Stdout)
}

// execute runs the command, emitting a catch-all failure envelope when the
// command itself fails (e.g. on an unknown flag), so every invocation still
// writes exactly one envelope and exits 0.
func execute(root *cobra.Command, stdout io.Writer) {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		_ = plugin.WriteFailure(stdout, err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xyplug-ai",
		Short: "Forward a prompt job from stdin to an LLM provider",
		Long: `Reads a single JSON job from standard input, issues one bounded generation
request against the selected provider, and writes one JSON result envelope to
standard output.

The process always exits 0: success or failure is carried inside the
envelope's code and description fields, not the exit status.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			loadEnvFile(logger)
			return plugin.Run(cmd.Context(), os.Stdin, os.Stdout, plugin.Options{
				Logger: logger,
			})
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress warnings")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment variables from this file")

	rootCmd.AddCommand(providersCmd())

	return rootCmd
}

// newLogger builds the stderr logger. stdout stays reserved for the envelope.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadEnvFile loads --env-file, or .env when present. A missing default file
// is not an error.
func loadEnvFile(logger *slog.Logger) {
	path := envFile
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if envFile != "" || !os.IsNotExist(err) {
			logger.Warn("failed to load env file", "path", path, "error", err)
		}
	}
}

func providersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List supported providers and their API key variables",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, name := range config.SupportedProviders() {
				info, _ := config.Lookup(name)
				if info.APIKeyEnv == "" {
					fmt.Fprintf(out, "%-10s no API key required (selected by base_url)\n", name)
					continue
				}
				fmt.Fprintf(out, "%-10s key: %s (fallback: %s)\n", name, info.APIKeyEnv, config.GenericKeyEnv)
			}
		},
	}
}
