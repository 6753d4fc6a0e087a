// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package cache

import (
	"encoding/json"

	"github.com/mdhender/wlparse/internal/ast"
	"github.com/mdhender/wlparse/internal/cst"
	"github.com/mdhender/wlparse/internal/diag"
)

// Entry is the payload a Store persists for one cache key: the trees a
// parse produced plus its issue split, everything a caller needs to skip
// re-running the pipeline on a hit. A ParseID correlates one parse
// invocation, not the content, so it is never itself cached -- a cache
// hit gets a fresh ParseID of its own.
type Entry struct {
	InputBytes int
	CST        *cst.Node
	AST        *ast.Node
	Fatal      []diag.Issue
	NonFatal   []diag.Issue
}

// marshal/unmarshal use encoding/json directly over the exported Node
// fields (cst.Node, ast.Node, token.Token, span.Span are plain trees
// with no cycles) rather than a generated or hand-rolled binary codec.
func (e *Entry) marshal() ([]byte, error) {
	return json.Marshal(e)
}

func unmarshalEntry(data []byte) (*Entry, error) {
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
