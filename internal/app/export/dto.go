package export

import "chunkatlas/internal/domain/atlas"

type Request struct {
	// Surfaces restricts the export; empty means every surveyed surface with
	// at least one classification run.
	Surfaces []string
}

type Response struct {
	Key        string           `json:"key"`
	Descriptor atlas.Descriptor `json:"descriptor"`
	Surfaces   int              `json:"surfaces"`
	Tiles      int              `json:"tiles"`
}
