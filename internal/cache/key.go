// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// KeyOptions is the part of a parse's options that goes into a cache key:
// tab width, quirk bits, and which tree(s) the entry holds. It does not
// carry the first-line or encoding mode, so parses that differ only in
// those share a key. Callers fill it in themselves; this package does not
// import the root package.
type KeyOptions struct {
	TabWidth int
	Quirks   uint32
	Mode     string // "cst", "ast", or "cst+ast" -- which tree(s) the entry holds
}

// Key computes the content-addressed cache key for (src, opts): a
// caller-stable hash of the input bytes and every KeyOptions field. Keys
// are persisted to disk and shared across process
// restarts, so SHA-256 is used rather than a faster non-cryptographic
// hash.
func Key(src []byte, opts KeyOptions) string {
	h := sha256.New()
	h.Write(src)
	fmt.Fprintf(h, "|tab=%d|quirks=%d|mode=%s", opts.TabWidth, opts.Quirks, opts.Mode)
	return hex.EncodeToString(h.Sum(nil))
}
