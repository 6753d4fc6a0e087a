// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	wlparse "github.com/mdhender/wlparse"
	"github.com/mdhender/wlparse/internal/diag"
	"github.com/mdhender/wlparse/internal/span"
	"github.com/spf13/cobra"
)

// formatSpan prints a span as line:col-line:col, the form every
// subcommand uses to report token and issue locations.
func formatSpan(sp span.Span) string {
	return fmt.Sprintf("%d:%d-%d:%d", sp.Start.Line, sp.Start.Col, sp.End.Line, sp.End.Col)
}

var argsTokenize struct {
	stats bool
}

var cmdTokenize = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Run the character layer and tokenizer, printing each token",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		src, err := readInput(path)
		if err != nil {
			return err
		}
		opts, err := parseOptions()
		if err != nil {
			return err
		}

		start := time.Now()
		toks, issues := wlparse.Tokenize(src, opts)
		elapsed := time.Since(start)

		for _, t := range toks {
			fmt.Printf("%-20s %-16s %q\n", t.Kind, formatSpan(t.Span), t.Text(src))
		}
		printIssues(issues)
		if argsTokenize.stats {
			printStats("tokenize", len(src), elapsed)
		}
		if hasFatal(issues) {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	cmdTokenize.Flags().BoolVar(&argsTokenize.stats, "stats", false, "print a size/timing summary to stderr")
}

func hasFatal(issues []diag.Issue) bool {
	_, fatal := diag.Split(issues)
	return len(fatal) > 0
}

func printIssues(issues []diag.Issue) {
	for _, iss := range issues {
		prefix := fmt.Sprintf("%s:", iss.Severity)
		if stderrIsTerminal() && !argsRoot.noColor {
			prefix = colorize(iss.Severity, prefix)
		}
		fmt.Fprintf(os.Stderr, "%s %s: %s\n", prefix, formatSpan(iss.Span), iss.Message)
	}
}

func colorize(sev diag.Severity, s string) string {
	code := "0"
	switch sev {
	case diag.Fatal, diag.Error:
		code = "31" // red
	case diag.Warning:
		code = "33" // yellow
	case diag.Remark:
		code = "36" // cyan
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
