// Package main implements the mermaidlint CLI: a thin wrapper around the
// library's parse/validate/detect entry points that prints diagnostics in
// text, JSON, or YAML form.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mermaidlint/mermaidlint"
	"github.com/mermaidlint/mermaidlint/diag"
)

var logger *slog.Logger

func main() {
	var format string
	var useColor bool
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	cmdRoot := &cobra.Command{
		Use:           "mermaidlint",
		Short:         "lint and parse Mermaid-family diagram sources",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Root().PersistentFlags()
			logLevel, err := flags.GetString("log-level")
			if err != nil {
				return err
			}
			debug, err := flags.GetBool("debug")
			if err != nil {
				return err
			}
			quiet, err := flags.GetBool("quiet")
			if err != nil {
				return err
			}
			if debug && quiet {
				return fmt.Errorf("--debug and --quiet are mutually exclusive")
			}
			var lvl slog.Level
			switch {
			case debug:
				lvl = slog.LevelDebug
			case quiet:
				lvl = slog.LevelError
			default:
				switch strings.ToLower(logLevel) {
				case "debug":
					lvl = slog.LevelDebug
				case "info":
					lvl = slog.LevelInfo
				case "warn", "warning":
					lvl = slog.LevelWarn
				case "error":
					lvl = slog.LevelError
				default:
					return fmt.Errorf("log-level: unknown value %q", logLevel)
				}
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
			switch format {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("format: unknown value %q, want text|json|yaml", format)
			}
			logger.Debug("starting", "command", cmd.Name(), "format", format, "log_level", lvl.String())
			return nil
		},
	}
	cmdRoot.PersistentFlags().Bool("debug", false, "enable debug logging (same as --log-level=debug)")
	cmdRoot.PersistentFlags().Bool("quiet", false, "only log errors (same as --log-level=error)")
	cmdRoot.PersistentFlags().String("log-level", "error", "logging level (debug|info|warn|error)")
	cmdRoot.PersistentFlags().StringVar(&format, "format", "text", "output format (text|json|yaml)")
	cmdRoot.PersistentFlags().BoolVar(&useColor, "color", false, "colorize text-mode diagnostics")

	cmdRoot.AddCommand(
		cmdLint(&format, &useColor),
		cmdCheck(&format),
		cmdDetect(&format),
		cmdParse(&format),
	)

	if err := cmdRoot.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// readInputs reads the given file paths, or stdin if none were given,
// returning each input's label (path, or "-" for stdin) paired with its
// content.
func readInputs(paths []string) (map[string]string, []string, error) {
	if len(paths) == 0 {
		logger.Debug("reading input from stdin")
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("reading stdin: %w", err)
		}
		return map[string]string{"-": string(data)}, []string{"-"}, nil
	}
	logger.Debug("reading input files", "count", len(paths))
	contents := make(map[string]string, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", p, err)
		}
		contents[p] = string(data)
	}
	return contents, paths, nil
}

func cmdLint(format *string, useColor *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [files...]",
		Short: "parse files and print their diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			contents, order, err := readInputs(args)
			if err != nil {
				return err
			}
			logger.Info("linting", "files", len(order))
			failed := false
			for _, label := range order {
				result := mermaidlint.Parse(contents[label], mermaidlint.Options{})
				if !result.OK {
					failed = true
				}
				logger.Debug("parsed file", "file", label, "ok", result.OK, "diagnostics", len(result.Diagnostics))
				if err := printResult(cmd.OutOrStdout(), label, contents[label], result, *format, *useColor); err != nil {
					return err
				}
			}
			if failed {
				os.Exit(1)
			}
			return nil
		},
	}
	return cmd
}

func cmdCheck(format *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "report whether files parse without error",
		RunE: func(cmd *cobra.Command, args []string) error {
			contents, order, err := readInputs(args)
			if err != nil {
				return err
			}
			failed := false
			type checkEntry struct {
				File string `json:"file" yaml:"file"`
				OK   bool   `json:"ok" yaml:"ok"`
			}
			var entries []checkEntry
			for _, label := range order {
				ok := mermaidlint.Validate(contents[label], mermaidlint.Options{})
				if !ok {
					failed = true
				}
				logger.Debug("checked file", "file", label, "ok", ok)
				entries = append(entries, checkEntry{File: label, OK: ok})
			}
			if err := encodeEntries(cmd.OutOrStdout(), *format, entries, func(e checkEntry) string {
				status := "OK"
				if !e.OK {
					status = "FAIL"
				}
				return fmt.Sprintf("%s: %s", e.File, status)
			}); err != nil {
				return err
			}
			if failed {
				os.Exit(1)
			}
			return nil
		},
	}
	return cmd
}

func cmdDetect(format *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [files...]",
		Short: "classify files' diagram kind without parsing the body",
		RunE: func(cmd *cobra.Command, args []string) error {
			contents, order, err := readInputs(args)
			if err != nil {
				return err
			}
			failed := false
			type detectEntry struct {
				File string `json:"file" yaml:"file"`
				Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`
			}
			var entries []detectEntry
			for _, label := range order {
				k, ok := mermaidlint.DetectType(contents[label])
				if !ok {
					failed = true
					logger.Warn("could not detect diagram kind", "file", label)
					entries = append(entries, detectEntry{File: label})
					continue
				}
				logger.Debug("detected diagram kind", "file", label, "kind", k.String())
				entries = append(entries, detectEntry{File: label, Kind: k.String()})
			}
			if err := encodeEntries(cmd.OutOrStdout(), *format, entries, func(e detectEntry) string {
				if e.Kind == "" {
					return fmt.Sprintf("%s: unknown", e.File)
				}
				return fmt.Sprintf("%s: %s", e.File, e.Kind)
			}); err != nil {
				return err
			}
			if failed {
				os.Exit(1)
			}
			return nil
		},
	}
	return cmd
}

// encodeEntries writes entries in the requested format: json/yaml marshal
// the slice directly, text mode uses textLine per entry.
func encodeEntries[T any](w io.Writer, format string, entries []T, textLine func(T) string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(entries)
	default:
		for _, e := range entries {
			fmt.Fprintln(w, textLine(e))
		}
		return nil
	}
}

func cmdParse(format *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "parse files and print the full result (ast + diagnostics)",
		RunE: func(cmd *cobra.Command, args []string) error {
			contents, order, err := readInputs(args)
			if err != nil {
				return err
			}
			failed := false
			for _, label := range order {
				result := mermaidlint.Parse(contents[label], mermaidlint.Options{})
				if !result.OK {
					failed = true
				}
				logger.Debug("parsed file", "file", label, "ok", result.OK, "diagnostics", len(result.Diagnostics))
				if err := printResult(cmd.OutOrStdout(), label, contents[label], result, *format, false); err != nil {
					return err
				}
			}
			if failed {
				os.Exit(1)
			}
			return nil
		},
	}
	return cmd
}

func printResult(w io.Writer, label, rawSource string, result mermaidlint.ParseResult, format string, useColor bool) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(result)
	default:
		return printText(w, label, rawSource, result, useColor)
	}
}

func printText(w io.Writer, label, rawSource string, result mermaidlint.ParseResult, useColor bool) error {
	status := "OK"
	if !result.OK {
		status = "FAIL"
	}
	if useColor {
		if result.OK {
			status = color.New(color.FgGreen, color.Bold).Sprint(status)
		} else {
			status = color.New(color.FgRed, color.Bold).Sprint(status)
		}
	}
	fmt.Fprintf(w, "%s: %s\n", label, status)

	renderSource := rawSource
	if result.Ast != nil {
		renderSource = result.Ast.Source()
	}
	renderer := diag.NewRenderer(renderSource, useColor)
	if len(result.Diagnostics) > 0 {
		fmt.Fprintln(w, renderer.RenderAll(result.Diagnostics))
	}
	return nil
}
