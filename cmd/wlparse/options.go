// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"

	wlparse "github.com/mdhender/wlparse"
	"github.com/mdhender/wlparse/internal/ast"
)

// parseOptions builds a wlparse.ParseOptions from the root command's
// persistent flags, translating the --quirk flag's string names into
// ast.Quirks bits. An unrecognized quirk name is the one CLI-level input
// error this command validates up front, before handing bytes to the
// library.
func parseOptions() (wlparse.ParseOptions, error) {
	var q ast.Quirks
	for _, name := range argsRoot.quirks {
		switch name {
		case "flatten-times":
			q |= ast.QuirkFlattenTimes
		case "infix-at":
			q |= ast.QuirkInfixBinaryAt
		case "infix-pipe":
			q |= ast.QuirkInfixBinaryPipe
		case "old-association":
			q |= ast.QuirkOldAssociation
		default:
			return wlparse.ParseOptions{}, fmt.Errorf("unknown quirk %q", name)
		}
	}
	var firstLine wlparse.FirstLineMode
	switch argsRoot.firstLine {
	case "", "normal":
		firstLine = wlparse.FirstLineNormal
	case "shebang":
		firstLine = wlparse.FirstLineCheckShebang
	case "script":
		firstLine = wlparse.FirstLineAlwaysScript
	default:
		return wlparse.ParseOptions{}, fmt.Errorf("unknown first-line mode %q", argsRoot.firstLine)
	}

	encoding := wlparse.EncodingNormal
	if argsRoot.strictASCII {
		encoding = wlparse.EncodingStrictASCII
	}

	return wlparse.ParseOptions{
		TabWidth:  argsRoot.tabWidth,
		FirstLine: firstLine,
		Encoding:  encoding,
		Quirks:    q,
	}, nil
}
