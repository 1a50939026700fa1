// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinels wrapped by the contract-violation panics.

package unionfind

import "errors"

// ErrNegativeSize is wrapped by the panic raised when New is called with n < 0.
var ErrNegativeSize = errors.New("unionfind: negative size")

// ErrIndexOutOfRange is wrapped by the panic raised when an index is not in 0..n-1.
var ErrIndexOutOfRange = errors.New("unionfind: index out of range")
