// Package atlas holds the map-export domain: surface surveys coming in from
// the game-side data source, and the tile pyramid layout the viewer
// descriptor is expressed in.
package atlas

import "chunkatlas/internal/domain/grid"

// Point is a world position in tile sub-units (32 per chunk).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Tag is a map annotation pinned at a world position, with optional popup
// text.
type Tag struct {
	Position Point  `json:"position"`
	Text     string `json:"text,omitempty"`
}

// SurveyChunk is one present chunk of a survey along with its seed-marker
// flag (the chunk contains a force-owned entity or a chart annotation).
type SurveyChunk struct {
	Coord grid.Coord
	Seed  bool
}

// Survey is the raw per-surface input the classifier runs over. Tags are
// keyed by force name.
type Survey struct {
	Surface string
	Chunks  []SurveyChunk
	Tags    map[string][]Tag
}

// Index builds the classifier input for the survey.
func (s Survey) Index() grid.Index {
	coords := make([]grid.Coord, 0, len(s.Chunks))
	seeds := make(map[grid.Coord]bool, len(s.Chunks))
	for _, ch := range s.Chunks {
		coords = append(coords, ch.Coord)
		if ch.Seed {
			seeds[ch.Coord] = true
		}
	}
	return grid.NewIndex(coords, func(c grid.Coord) bool { return seeds[c] })
}

// Descriptor is the document the tile viewer consumes: per surface, the tile
// path components present in the pyramid and the annotation tags.
type Descriptor struct {
	Surfaces  map[string]SurfaceDescriptor `json:"surfaces"`
	Extension string                       `json:"extension"`
}

// SurfaceDescriptor lists one surface's viewer tiles as (zoom, x, y) path
// components.
type SurfaceDescriptor struct {
	Tiles [][3]int         `json:"tiles"`
	Tags  map[string][]Tag `json:"tags"`
}
