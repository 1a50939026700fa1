// SPDX-License-Identifier: MIT
// Package: wugraph/builder
//
// id_fn.go — vertex label schemes for graph constructors.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex label from its zero‐based index.
// It must be a pure, deterministic function: given the same idx, it always returns the same string.
// Panics in implementations indicate programmer error in configuration.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A", 25→"Z".
// Panics if idx < 0 or idx > 25.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns the “Excel‐style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Unlike SymbolIDFn it never runs out of letters.
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithPrefixIDs sets the ID scheme to PrefixIDFn(prefix).
// Example: WithPrefixIDs("v") → "v0","v1",...
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
