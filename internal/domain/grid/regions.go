package grid

// ClassifyRegions partitions every chunk outside the horizon into maximal
// 4-connected components and flags each component as an edge component when
// any member is missing at least one of its four neighbor coordinates from
// the full index. A neighbor that is merely within the horizon still counts
// as present; only a genuinely absent coordinate makes a component touch the
// map boundary.
//
// Traversal uses an explicit queue and the ComponentID stamp as the visited
// set, so the outcome never depends on map iteration order. Returns the
// number of components found.
func ClassifyRegions(idx Index, horizon int) int {
	pending := make([]*Chunk, 0)
	for _, ch := range idx {
		ch.ComponentID = ComponentUnset
		ch.Edge = false
		if !ch.WithinHorizon(horizon) {
			pending = append(pending, ch)
		}
	}

	next := 0
	for _, start := range pending {
		if start.ComponentID != ComponentUnset {
			continue
		}
		id := next
		next++

		edge := false
		queue := []*Chunk{start}
		start.ComponentID = id
		for qi := 0; qi < len(queue); qi++ {
			ch := queue[qi]
			if idx.presentNeighbors(ch.Coord) < 4 {
				edge = true
			}
			for _, d := range neighborOffsets {
				n, ok := idx[ch.Coord.translate(d)]
				if !ok || n.WithinHorizon(horizon) || n.ComponentID != ComponentUnset {
					continue
				}
				n.ComponentID = id
				queue = append(queue, n)
			}
		}
		if edge {
			for _, ch := range queue {
				ch.Edge = true
			}
		}
	}
	return next
}
