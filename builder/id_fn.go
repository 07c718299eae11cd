// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn names the variable at a zero-based position of a synthetic network.
// Distinct positions must map to distinct names, and every name must be
// usable in queries and network files (no spaces or separators).
type IDFn func(idx int) string

// ExcelColumnIDFn names variables A..Z, then AA, AB and so on, like
// spreadsheet columns. It is the default scheme. Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: negative index %d", idx))
	}
	var letters []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		letters = append([]byte{byte('A' + i%26)}, letters...)
	}

	return string(letters)
}

// SymbolNumberIDFn names variables prefix0, prefix1, ...
// The returned IDFn panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn(%q): negative index %d", prefix, idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}
