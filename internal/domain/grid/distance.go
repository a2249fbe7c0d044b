package grid

import "errors"

// ErrNegativeHorizon is returned before any pass runs when the configured
// horizon is negative.
var ErrNegativeHorizon = errors.New("grid: horizon must be non-negative")

// DefaultHorizon is the seed reach used when a run does not override it.
const DefaultHorizon = 5

// BuildDistanceField assigns every chunk its hop distance to the nearest seed
// chunk, computed with exactly horizon relaxation passes over the present
// 4-neighbors. After the passes, every chunk whose true distance is at most
// horizon carries it exactly; chunks discovered beyond that may carry an
// overestimate, which the horizon cut-off never observes. Chunks unreachable
// within the passes keep DistanceUnset.
//
// The bounded relaxation is intentional: horizon is small and constant, so
// the fixed loop stays simpler than a frontier queue and its convergence is
// exact where it matters.
func BuildDistanceField(idx Index, horizon int) error {
	if horizon < 0 {
		return ErrNegativeHorizon
	}
	for _, ch := range idx {
		if ch.Seed {
			ch.Distance = 0
		} else {
			ch.Distance = DistanceUnset
		}
	}
	for pass := 0; pass < horizon; pass++ {
		for coord, ch := range idx {
			best := DistanceUnset
			for _, d := range neighborOffsets {
				n, ok := idx[coord.translate(d)]
				if !ok || n.Distance == DistanceUnset {
					continue
				}
				if best == DistanceUnset || n.Distance < best {
					best = n.Distance
				}
			}
			if best == DistanceUnset {
				continue
			}
			if ch.Distance == DistanceUnset || best+1 < ch.Distance {
				ch.Distance = best + 1
			}
		}
	}
	return nil
}
