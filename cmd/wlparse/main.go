// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package main implements the wlparse CLI: a thin shell over the wlparse
// library's Tokenize/ParseCST/ParseAST entry points. File I/O lives
// here, not in the library.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"

	"github.com/mdhender/wlparse/internal/config"
)

var version = semver.Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
	Build: semver.Commit(),
}

func main() {
	for _, arg := range os.Args {
		if arg == "-version" || arg == "--version" {
			fmt.Printf("%s\n", version.Short())
			return
		} else if arg == "-build-info" || arg == "--build-info" {
			fmt.Printf("%s\n", version.String())
			return
		}
	}
	log.SetFlags(log.Lshortfile | log.Ltime)

	const configFileName = "data/wlparse.json"
	debugConfigFile := false
	if sb, err := os.Stat(configFileName); err == nil && sb.Mode().IsRegular() {
		debugConfigFile = true
	}
	cfg, err := config.Load(configFileName, debugConfigFile)
	if err != nil && debugConfigFile {
		log.Printf("[config] %q: %v\n", configFileName, err)
	}

	if err := Execute(cfg); err != nil {
		log.Fatal(err)
	}
}

var argsRoot struct {
	tabWidth    int
	quirks      []string
	noColor     bool
	firstLine   string
	strictASCII bool
}

var cmdRoot = &cobra.Command{
	Use:   "wlparse",
	Short: "Parse Wolfram Language input-form source",
	Long:  `wlparse tokenizes, parses, and abstracts Wolfram Language input-form source text.`,
}

// Execute wires every subcommand onto cmdRoot. The tab-width, quirk,
// no-color, and cache-info --path flags take their defaults from the
// loaded config file; first-line and strict-ascii have fixed defaults.
func Execute(cfg *config.Config) error {
	cmdRoot.PersistentFlags().IntVar(&argsRoot.tabWidth, "tab-width", cfg.Parser.TabWidth, "tab width for column accounting")
	cmdRoot.PersistentFlags().StringSliceVar(&argsRoot.quirks, "quirk", cfg.Parser.Quirks, "enable a legacy abstraction quirk (repeatable): flatten-times, infix-at, infix-pipe, old-association")
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.noColor, "no-color", cfg.Output.NoColor, "disable colored diagnostic output even on a terminal")
	cmdRoot.PersistentFlags().StringVar(&argsRoot.firstLine, "first-line", "normal", "first-line handling: normal, shebang, or script")
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.strictASCII, "strict-ascii", false, "report every byte >= 0x80 as an encoding error")

	cmdRoot.AddCommand(cmdTokenize)
	cmdRoot.AddCommand(cmdCST)
	cmdRoot.AddCommand(cmdAST)
	cmdRoot.AddCommand(cmdVersion)
	cmdRoot.AddCommand(cmdCacheInfo)
	cmdCacheInfo.Flags().StringVar(&argsCacheInfo.path, "path", cfg.Cache.Path, "path to the cache database")

	return cmdRoot.Execute()
}

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of this application",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s\n", version.String())
	},
}
