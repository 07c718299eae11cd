// SPDX-License-Identifier: MIT

package network

// TopologicalOrder returns every variable exactly once, parents before
// children, ties broken by ascending name. The order is computed once by
// Build; each call returns a fresh copy.
//
// Complexity: O(V) per call.
func (net *Network) TopologicalOrder() []string {
	return append([]string(nil), net.order...)
}

// topologicalOrder runs the lexicographic fixed-point scan:
// each pass walks nodes in name order and places the first unplaced node
// whose parents are all placed. A pass that places nothing means a cycle.
//
// Because nodes are stored sorted by name, arena order is lexicographic order.
//
// Complexity:
//
//   - Time:   O(V² + V·E) (V passes, each touching every node and its parents)
//   - Memory: O(V)
func topologicalOrder(nodes []Node) ([]string, error) {
	placed := make([]bool, len(nodes))
	order := make([]string, 0, len(nodes))

	for len(order) < len(nodes) {
		next := -1
		// 1. Scan candidates in ascending name order
		for i := range nodes {
			if placed[i] {
				continue
			}
			if parentsPlaced(&nodes[i], placed) {
				next = i
				break
			}
		}
		// 2. No progress: the remaining nodes form or depend on a cycle
		if next < 0 {
			return nil, ErrCycleDetected
		}
		// 3. Place and restart the scan
		placed[next] = true
		order = append(order, nodes[next].name)
	}

	return order, nil
}

// parentsPlaced reports whether every parent of n is already placed.
func parentsPlaced(n *Node, placed []bool) bool {
	for _, pi := range n.parentIx {
		if !placed[pi] {
			return false
		}
	}

	return true
}
