// Package grid implements the chunk visibility classifier: a distance field
// over a sparse chunk grid followed by a region pass that separates interior
// pockets from regions bleeding into unexplored territory.
package grid

const (
	// DistanceUnset marks a chunk not reached from any seed chunk within the
	// horizon.
	DistanceUnset = -1
	// ComponentUnset marks a chunk not assigned to any region component.
	ComponentUnset = -1
)

// Chunk carries the mutable per-chunk classifier state.
type Chunk struct {
	Coord       Coord
	Seed        bool
	Distance    int
	ComponentID int
	Edge        bool
}

// WithinHorizon reports whether the chunk was reached from a seed chunk in
// fewer than horizon steps.
func (ch *Chunk) WithinHorizon(horizon int) bool {
	return ch.Distance != DistanceUnset && ch.Distance < horizon
}

// Index is a sparse chunk set keyed by coordinate. Coordinates absent from
// the index are unexplored map; they block distance propagation and region
// expansion.
type Index map[Coord]*Chunk

// NewIndex builds an Index from the present coordinates of a surface. seed
// may be nil when no chunk carries a seed marker. Duplicate coordinates
// collapse to one chunk.
func NewIndex(coords []Coord, seed func(Coord) bool) Index {
	idx := make(Index, len(coords))
	for _, c := range coords {
		if _, ok := idx[c]; ok {
			continue
		}
		ch := &Chunk{Coord: c, Distance: DistanceUnset, ComponentID: ComponentUnset}
		if seed != nil {
			ch.Seed = seed(c)
		}
		idx[c] = ch
	}
	return idx
}

// presentNeighbors counts how many of the four neighbor coordinates exist in
// the index at all, regardless of their horizon state.
func (idx Index) presentNeighbors(at Coord) int {
	n := 0
	for _, d := range neighborOffsets {
		if _, ok := idx[at.translate(d)]; ok {
			n++
		}
	}
	return n
}
