package survey

import "chunkatlas/internal/domain/atlas"

type ChunkEntry struct {
	X    int  `json:"x"`
	Y    int  `json:"y"`
	Seed bool `json:"seed,omitempty"`
}

type Request struct {
	Surface string
	Chunks  []ChunkEntry
	Tags    map[string][]atlas.Tag
}

type Response struct {
	Surface string `json:"surface"`
	Chunks  int    `json:"chunks"`
	Seeds   int    `json:"seeds"`
	Tags    int    `json:"tags"`
}
