package grid

import "sort"

// Excluded describes a chunk left out of the render set, with its component
// diagnostics.
type Excluded struct {
	Coord       Coord `json:"coord"`
	ComponentID int   `json:"component_id"`
}

// Result is the outcome of one classification run over a single surface.
type Result struct {
	Included   []Coord
	Excluded   []Excluded
	Components int
}

// Classify runs the distance field and region passes over idx and evaluates
// the inclusion predicate: a chunk is kept when it lies within the horizon or
// belongs to an interior component. Both slices come back sorted by (Y, X) so
// persisted runs are byte-for-byte reproducible.
//
// idx is mutated in place; calling Classify again on the same index resets
// all derived state first, so repeated runs yield the same result.
func Classify(idx Index, horizon int) (Result, error) {
	if err := BuildDistanceField(idx, horizon); err != nil {
		return Result{}, err
	}
	res := Result{
		Included:   make([]Coord, 0, len(idx)),
		Excluded:   make([]Excluded, 0),
		Components: ClassifyRegions(idx, horizon),
	}
	for coord, ch := range idx {
		if ch.WithinHorizon(horizon) || !ch.Edge {
			res.Included = append(res.Included, coord)
		} else {
			res.Excluded = append(res.Excluded, Excluded{Coord: coord, ComponentID: ch.ComponentID})
		}
	}
	sortCoords(res.Included)
	sort.Slice(res.Excluded, func(i, j int) bool {
		return coordLess(res.Excluded[i].Coord, res.Excluded[j].Coord)
	})
	return res, nil
}

func sortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool { return coordLess(cs[i], cs[j]) })
}

func coordLess(a, b Coord) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
