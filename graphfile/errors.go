// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors for document validation and parsing.
// Policy:
//   - Callers branch with errors.Is; context is attached by the caller via %w.

package graphfile

import "errors"

// ErrEmptyLabel indicates a vertex or edge endpoint with an empty name.
var ErrEmptyLabel = errors.New("graphfile: empty vertex label")

// ErrMissingWeight indicates an edge entry without a weight field.
var ErrMissingWeight = errors.New("graphfile: edge weight is required")

// ErrSyntax wraps YAML parse and schema errors.
var ErrSyntax = errors.New("graphfile: malformed document")
