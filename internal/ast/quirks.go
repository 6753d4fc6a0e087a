// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package ast

// Quirks selects legacy-compatible abstraction behaviors. The zero value
// selects none of them, i.e. the modern/default behavior described in
// the rest of this package's doc comments.
type Quirks uint8

const (
	// QuirkFlattenTimes additionally splices a Times call arriving as an
	// already-built operand (e.g. an explicit Times[a,b] sitting next to
	// a `* c`) into the surrounding Times chain, rather than nesting it
	// as a single factor. Without the quirk, only the operator-chain
	// built directly from adjacent `*`/`/` tokens is flattened.
	QuirkFlattenTimes Quirks = 1 << iota

	// QuirkInfixBinaryAt keeps `f @ x` as a literal binary call
	// (Head: Symbol("At"), Args: [f, x]) instead of desugaring it into
	// the prefix-application form Call{Head: f, Args: [x]}.
	QuirkInfixBinaryAt

	// QuirkInfixBinaryPipe keeps `a | b | c` as a left-nested chain of
	// binary "Alternatives" calls instead of flattening it into one
	// variadic Alternatives call.
	QuirkInfixBinaryPipe

	// QuirkOldAssociation reinterprets an Association group's items as a
	// flat key, value, key, value, ... argument list (the legacy shape)
	// instead of a list of Rule[key,value] pairs: every Rule-shaped item
	// is exploded into its two arguments in place.
	QuirkOldAssociation
)

// Has reports whether q is set in the receiver.
func (qs Quirks) Has(q Quirks) bool { return qs&q != 0 }
