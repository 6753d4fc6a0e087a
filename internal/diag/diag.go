// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package diag implements the Issue record shared by every layer of the
// pipeline. The character layer, tokenizer, parser, and abstraction pass
// all append Issues to a single running list rather than aborting; a
// caller tells success from failure by inspecting Severity, not by a
// control-flow jump.
package diag

import "github.com/mdhender/wlparse/internal/span"

// Severity classifies how serious an Issue is. Fatal means the input could
// not be faithfully parsed; the tree still exists and is safe to walk. A
// Fatal issue does not always come with an error node: a closer missing at
// end of input is synthesized, an unterminated string stays a String
// token, and an unterminated comment stays Comment trivia.
type Severity int

const (
	Remark Severity = iota
	Warning
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Remark:
		return "remark"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "severity(?)"
	}
}

// Kind identifies the category of an Issue (lex error, parse error,
// encoding error, style warning, ...). It is a plain string rather than a
// closed enum so each layer can define its own constants without importing
// the others.
type Kind string

// Issue is one entry in a Result's diagnostic stream.
type Issue struct {
	Kind        Kind
	Severity    Severity
	Message     string
	Span        span.Span
	CodeActions []string // suggested fixes, e.g. "insert `)`"; informational only
	Notes       []string
}

// IsFatal reports whether the issue prevents the syntax tree from being
// faithfully parsed. Non-fatal issues (Remark/Warning/Error) are
// style notes, recovered-operand notices, and similar soft findings;
// "Error" here is reserved for issues serious enough to flag but that still
// leave a usable tree (e.g. an unusual escape sequence), distinct from
// Fatal which marks input that could not be faithfully parsed.
func (i Issue) IsFatal() bool {
	return i.Severity == Fatal
}

// Split partitions issues into fatal and non-fatal, matching the Result
// envelope's (fatal-issues, non-fatal-issues) shape.
func Split(issues []Issue) (fatal, nonFatal []Issue) {
	for _, iss := range issues {
		if iss.IsFatal() {
			fatal = append(fatal, iss)
		} else {
			nonFatal = append(nonFatal, iss)
		}
	}
	return fatal, nonFatal
}
