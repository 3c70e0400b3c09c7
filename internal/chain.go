package internal

import "sort"

// Facilities for turning the unordered boundary of a cavity into something we
// can walk. A cavity that reaches the outside of the mesh is bounded by an open
// chain, whose two free ends sit on the hull. A cavity strictly inside the mesh
// is bounded by a closed loop. Chains are short (they are bounded by local mesh
// density), so the quadratic scans are fine.

// Is the chain open? An open chain has a node that appears only once among its
// endpoints.
func IsOpenChain(edges []BoundaryEdge) bool {
	degree := make(map[int]int)
	for _, e := range edges {
		degree[e.Start]++
		degree[e.End]++
	}
	for _, d := range degree {
		if d == 1 {
			return true
		}
	}
	return false
}

// Order an open chain head to tail. We walk forward from the first edge's end,
// then backward from its start, and splice the two walks together.
func OrderPolyline(edges []BoundaryEdge) []BoundaryEdge {
	if len(edges) == 0 {
		return nil
	}
	used := make([]bool, len(edges))
	used[0] = true

	forward := []BoundaryEdge{edges[0]}
	for next := edges[0].End; ; {
		i := findChainEdge(edges, used, func(e BoundaryEdge) bool { return e.Start == next })
		if i < 0 {
			break
		}
		used[i] = true
		forward = append(forward, edges[i])
		next = edges[i].End
	}

	var backward []BoundaryEdge
	for prev := edges[0].Start; ; {
		i := findChainEdge(edges, used, func(e BoundaryEdge) bool { return e.End == prev })
		if i < 0 {
			break
		}
		used[i] = true
		backward = append(backward, edges[i])
		prev = edges[i].Start
	}

	if len(forward)+len(backward) != len(edges) {
		topologyf("cavity boundary is not a single chain: used %d of %d edges", len(forward)+len(backward), len(edges))
	}

	result := make([]BoundaryEdge, 0, len(edges))
	for i := len(backward) - 1; i >= 0; i-- {
		result = append(result, backward[i])
	}
	return append(result, forward...)
}

// Order a closed loop head to tail, starting from the first edge.
func OrderLoop(edges []BoundaryEdge) []BoundaryEdge {
	if len(edges) == 0 {
		return nil
	}
	used := make([]bool, len(edges))
	used[0] = true
	result := []BoundaryEdge{edges[0]}
	origin := edges[0].Start
	for next := edges[0].End; next != origin; {
		i := findChainEdge(edges, used, func(e BoundaryEdge) bool { return e.Start == next })
		if i < 0 {
			topologyf("cavity boundary loop is broken at node %d", next)
		}
		used[i] = true
		result = append(result, edges[i])
		next = edges[i].End
	}
	if len(result) != len(edges) {
		topologyf("cavity boundary is not a single loop: used %d of %d edges", len(result), len(edges))
	}
	return result
}

func findChainEdge(edges []BoundaryEdge, used []bool, match func(BoundaryEdge) bool) int {
	for i, e := range edges {
		if !used[i] && match(e) {
			return i
		}
	}
	return -1
}

// Order the chain using whichever walk its shape calls for.
func OrderChain(edges []BoundaryEdge) (ordered []BoundaryEdge, open bool) {
	if IsOpenChain(edges) {
		return OrderPolyline(edges), true
	}
	return OrderLoop(edges), false
}

func sortBoundaryEdges(edges []BoundaryEdge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].Edge < edges[j].Edge })
}
