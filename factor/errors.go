// SPDX-License-Identifier: MIT
// Package factor: sentinel error set.
// Algorithms return these sentinels (wrapped with method context via %w);
// tests check them with errors.Is. No algorithm panics on caller input.

package factor

import "errors"

var (
	// ErrNilFactor indicates a nil *Factor receiver or argument.
	ErrNilFactor = errors.New("factor: nil factor")

	// ErrBadScope indicates a scope that is not strictly ascending
	// (unsorted, duplicated or empty names).
	ErrBadScope = errors.New("factor: scope must be sorted and unique")

	// ErrSizeMismatch indicates a value table whose length is not 2^|scope|.
	ErrSizeMismatch = errors.New("factor: table size does not match scope")

	// ErrBadValue indicates a negative, NaN or infinite table entry.
	ErrBadValue = errors.New("factor: value must be finite and non-negative")

	// ErrOutOfRange indicates an assignment index outside the table.
	ErrOutOfRange = errors.New("factor: index out of range")

	// ErrScopeTooLarge indicates a join whose dense table would exceed MaxScope
	// variables; the bit-packed index would overflow well before memory does.
	ErrScopeTooLarge = errors.New("factor: scope too large")
)
