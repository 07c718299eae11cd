// SPDX-License-Identifier: MIT

package factor

import "sync"

// assignmentCache memoizes Assignments by length. Values are never mutated
// after being stored, so concurrent readers need no further locking.
var assignmentCache sync.Map // int -> [][]bool

// Assignments returns all 2^n boolean tuples of length n in bit-packed
// order: row i is the tuple whose network.PackIndex is i, so row 0 is all
// false and the last row is all true.
//
// The result is shared across callers and MUST NOT be modified.
// n outside [0, MaxScope] yields nil.
//
// Complexity:
//   - First call per n: Time O(n·2^n), Space O(n·2^n).
//   - Later calls: O(1).
func Assignments(n int) [][]bool {
	if n < 0 || n > MaxScope {
		return nil
	}
	if rows, ok := assignmentCache.Load(n); ok {
		return rows.([][]bool)
	}

	size := 1 << n
	flat := make([]bool, size*n) // one backing array for every row
	rows := make([][]bool, size)
	for idx := 0; idx < size; idx++ {
		row := flat[idx*n : (idx+1)*n : (idx+1)*n]
		for i := 0; i < n; i++ {
			row[i] = idx>>(n-1-i)&1 == 1
		}
		rows[idx] = row
	}

	// another goroutine may have raced us; keep whichever landed first
	actual, _ := assignmentCache.LoadOrStore(n, rows)

	return actual.([][]bool)
}
