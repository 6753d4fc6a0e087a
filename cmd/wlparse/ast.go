// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	wlparse "github.com/mdhender/wlparse"
	"github.com/mdhender/wlparse/internal/ast"
	"github.com/spf13/cobra"
)

var argsAST struct {
	sequence bool
	stats    bool
}

var cmdAST = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse and abstract to a head/argument AST, printed Wolfram-style",
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
		if argsAST.sequence {
			nodes, issues := wlparse.ParseASTSequence(src, opts)
			for _, n := range nodes {
				fmt.Println(formatASTNode(n))
			}
			printIssues(issues)
			if argsAST.stats {
				printStats("ast", len(src), time.Since(start))
			}
			if hasFatal(issues) {
				os.Exit(1)
			}
			return nil
		}

		root, issues := wlparse.ParseAST(src, opts)
		fmt.Println(formatASTNode(root))
		printIssues(issues)
		if argsAST.stats {
			printStats("ast", len(src), time.Since(start))
		}
		if hasFatal(issues) {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	cmdAST.Flags().BoolVar(&argsAST.sequence, "sequence", false, "parse as a sequence of top-level expressions")
	cmdAST.Flags().BoolVar(&argsAST.stats, "stats", false, "print a size/timing summary to stderr")
}

// formatASTNode renders a Node the way Wolfram Language itself prints an
// expression's FullForm: Head[arg1, arg2, ...]. This is a debugging aid,
// not a pretty-printer -- it exists only so a CLI user can eyeball what
// the abstraction pass produced.
func formatASTNode(n *ast.Node) string {
	if n == nil {
		return "Null"
	}
	switch n.Kind {
	case ast.KindSymbol:
		return n.Name
	case ast.KindInteger:
		return n.IntValue.String()
	case ast.KindReal:
		return fmt.Sprintf("%g", n.RealValue)
	case ast.KindString:
		return fmt.Sprintf("%q", n.StrValue)
	case ast.KindError:
		return fmt.Sprintf("$Failed /* %s */", n.Message)
	case ast.KindCall:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = formatASTNode(a)
		}
		return fmt.Sprintf("%s[%s]", formatASTNode(n.Head), strings.Join(args, ", "))
	default:
		return fmt.Sprintf("?Kind(%d)", n.Kind)
	}
}
