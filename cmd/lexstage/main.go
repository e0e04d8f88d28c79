// Package main provides the lexstage binary entry point. Lexstage
// curates a small lexical taxonomy: a core verb lexicon and a relation
// vocabulary, with resolution, validation, staging, and merging tools.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/magazine233/lexstage/config"
)

const (
	Version   = "0.2.0"
	BuildTime = "dev"
	appName   = "lexstage"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)
	cfg := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Curate the core verb lexicon and relation vocabulary",
		Long: `Lexstage curates a small lexical taxonomy: a core verb lexicon
(canonical verbs with synonym lists) and a relation vocabulary (semantic
relations referencing lexicon verbs, optionally with inverse relations).

It provides:
- stage: resolve each relation's verb set and write reviewable previews
- validate: check referential integrity and duplicate terms
- merge: combine lexicon and relations into a seed document
- inspect: summarize a taxonomy document's top-level shape

Conflicts and dangling references are reported, never silently fixed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			*cfg = *loaded
			level := logLevel
			if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
				level = cfg.LogLevel
			}
			configureLogging(level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newStageCmd(cfg))
	cmd.AddCommand(newValidateCmd(cfg))
	cmd.AddCommand(newMergeCmd(cfg))
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
