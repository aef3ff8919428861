// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"extcheck/internal/config"
	"extcheck/internal/report"
	"extcheck/internal/scan"
	"extcheck/internal/sniff"
	"extcheck/internal/version"
	"extcheck/internal/walk"
)

// Exit codes: 0 clean, 2 mismatches found in report-only mode, 3 errors.
const (
	exitClean      = 0
	exitUsage      = 2
	exitMismatches = 2
	exitErrors     = 3
)

// cliFlags holds command line flag values before config resolution.
type cliFlags struct {
	input         string
	reportPath    string
	format        string
	rename        bool
	recursive     bool
	workers       int
	minConfidence float64
	noColor       bool
	configPath    string
	excludes      string
	showVersion   bool
}

func main() {
	os.Exit(run())
}

func run() int {
	flags := parseFlags()
	if flags.showVersion {
		fmt.Println(version.Info())
		return exitClean
	}

	cfg := resolveConfiguration(flags)

	if cfg.NoColor || !isTerminal(os.Stderr) {
		color.NoColor = true
	}

	if cfg.Input == "" {
		fmt.Fprintln(os.Stderr, "[ERR] --input is required (or set 'input' in the config file)")
		return exitUsage
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERR] %v\n", err)
		return exitUsage
	}

	walker, err := walk.New(cfg.ExcludePatterns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERR] %v\n", err)
		return exitUsage
	}

	infoColor := color.New(color.FgCyan)
	infoColor.Fprintf(os.Stderr, "[INFO] Scanning: %s\n", cfg.Input)

	files, err := walker.Files(cfg.Input, cfg.Recursive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERR] %v\n", err)
		return exitUsage
	}

	scanner := scan.New(sniff.DefaultTable(), scan.Options{
		Rename:        cfg.Rename,
		MinConfidence: cfg.MinConfidence,
		Workers:       cfg.Workers,
	})
	records, summary := scanner.Run(files)

	if err := report.WriteFile(cfg.Report, format, records); err != nil {
		fmt.Fprintf(os.Stderr, "[ERR] %v\n", err)
		return exitErrors
	}

	printSummary(cfg, summary)

	if summary.Errors > 0 {
		return exitErrors
	}
	if summary.Mismatches > 0 && !cfg.Rename {
		return exitMismatches
	}
	return exitClean
}

func parseFlags() *cliFlags {
	flags := &cliFlags{}
	flag.StringVar(&flags.input, "input", "", "Input file or directory (recursive)")
	flag.StringVar(&flags.reportPath, "report", "", "Path to the report file (default: report.csv)")
	flag.StringVar(&flags.format, "format", "", "Report format: csv or json (default: csv)")
	flag.BoolVar(&flags.rename, "rename", false, "Rename files to the detected correct extension")
	flag.BoolVar(&flags.recursive, "recursive", true, "Recurse into subdirectories")
	flag.IntVar(&flags.workers, "workers", 0, "Parallel workers (default: number of CPUs)")
	flag.Float64Var(&flags.minConfidence, "min-confidence", 0, "Minimum detection confidence required to rename")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.StringVar(&flags.configPath, "config", "", "Optional YAML/JSON config file (flags override)")
	flag.StringVar(&flags.excludes, "exclude", "", "Comma-separated glob patterns to skip")
	flag.BoolVar(&flags.showVersion, "version", false, "Show version information")
	flag.Parse()
	return flags
}

// resolveConfiguration layers the config file under explicitly set flags.
func resolveConfiguration(flags *cliFlags) *config.Config {
	configPath := flags.configPath
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg := config.LoadConfigOrDefault(configPath)

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["input"] {
		cfg.Input = flags.input
	}
	if set["report"] {
		cfg.Report = flags.reportPath
	}
	if set["format"] {
		cfg.Format = flags.format
	}
	if set["rename"] {
		cfg.Rename = flags.rename
	}
	if set["recursive"] {
		cfg.Recursive = flags.recursive
	}
	if set["workers"] {
		cfg.Workers = flags.workers
	}
	if set["min-confidence"] {
		cfg.MinConfidence = flags.minConfidence
	}
	if set["no-color"] {
		cfg.NoColor = flags.noColor
	}
	if set["exclude"] {
		cfg.ExcludePatterns = splitPatterns(flags.excludes)
	}
	return cfg
}

func splitPatterns(s string) []string {
	var patterns []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

func printSummary(cfg *config.Config, sum scan.Summary) {
	info := color.New(color.FgCyan)
	warn := color.New(color.FgYellow)
	errc := color.New(color.FgRed)

	info.Fprintf(os.Stderr, "[INFO] Done. Total: %d | Mismatches: %d | Renamed: %d | Errors: %d\n",
		sum.Total, sum.Mismatches, sum.Renamed, sum.Errors)

	reportPath := cfg.Report
	if abs, err := filepath.Abs(reportPath); err == nil {
		reportPath = abs
	}
	info.Fprintf(os.Stderr, "[INFO] Report: %s\n", reportPath)

	if cfg.Rename {
		warn.Fprintln(os.Stderr, "[INFO] Rename was enabled. See 'action' and 'new_path' columns for results.")
	} else {
		info.Fprintln(os.Stderr, "[INFO] Rename was NOT enabled (dry-run mode).")
	}
	if sum.Errors > 0 {
		errc.Fprintf(os.Stderr, "[WARN] %d file(s) could not be processed. See 'error' column.\n", sum.Errors)
	}
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
