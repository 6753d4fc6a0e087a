// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	wlparse "github.com/mdhender/wlparse"
	"github.com/mdhender/wlparse/internal/cst"
	"github.com/spf13/cobra"
)

var argsCST struct {
	sequence bool
	stats    bool
}

var cmdCST = &cobra.Command{
	Use:   "cst [file]",
	Short: "Parse to a concrete syntax tree and print it as an indented outline",
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
		if argsCST.sequence {
			nodes, issues := wlparse.ParseCSTSequence(src, opts)
			for i, n := range nodes {
				fmt.Printf("-- expression %d --\n", i+1)
				printCSTNode(n, src, 0)
			}
			printIssues(issues)
			if argsCST.stats {
				printStats("cst", len(src), time.Since(start))
			}
			if hasFatal(issues) {
				os.Exit(1)
			}
			return nil
		}

		root, issues := wlparse.ParseCST(src, opts)
		printCSTNode(root, src, 0)
		printIssues(issues)
		if argsCST.stats {
			printStats("cst", len(src), time.Since(start))
		}
		if hasFatal(issues) {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	cmdCST.Flags().BoolVar(&argsCST.sequence, "sequence", false, "parse as a sequence of top-level expressions")
	cmdCST.Flags().BoolVar(&argsCST.stats, "stats", false, "print a size/timing summary to stderr")
}

func printCSTNode(n *cst.Node, src []byte, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	switch n.Kind {
	case cst.KindToken:
		fmt.Printf("%s%s %s %q\n", indent, n.Kind, formatSpan(n.Span), n.Tok.Text(src))
		return
	case cst.KindError:
		fmt.Printf("%s%s %s %q\n", indent, n.Kind, formatSpan(n.Span), n.Message)
	default:
		label := n.Op
		if label == "" {
			label = n.Kind.String()
		}
		fmt.Printf("%s%s(%s) %s\n", indent, n.Kind, label, formatSpan(n.Span))
	}
	for _, c := range n.Children {
		printCSTNode(c, src, depth+1)
	}
}
