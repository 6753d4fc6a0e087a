// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package errs defines constant error types using a custom Error string type.
// These are distinct from the Issue values the parser attaches to a
// Result: an Issue describes a problem with the input; an errs.Error
// describes a failure that is not about the input (internal/config uses
// it for its load errors). No entry point of the parser core returns an
// errs.Error; the parser reports its own invariant violations, such as
// popping an empty context stack, as Fatal Issues of a separate kind.
// The Error type supports comparison via errors.Is().
package errs
