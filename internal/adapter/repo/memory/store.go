package memory

import (
	"sync"

	"chunkatlas/internal/app/ports"
	"chunkatlas/internal/domain/atlas"
)

// Store backs the in-memory repositories used by tests and DSN-less runs.
type Store struct {
	mu      sync.RWMutex
	surveys map[string]atlas.Survey
	runs    map[string]ports.ClassificationRun
	// runOrder preserves insertion order per surface so "latest" does not
	// depend on map iteration.
	runOrder map[string][]string
	objects  map[string]storedObject
}

type storedObject struct {
	contentType string
	data        []byte
}

func NewStore() *Store {
	return &Store{
		surveys:  make(map[string]atlas.Survey),
		runs:     make(map[string]ports.ClassificationRun),
		runOrder: make(map[string][]string),
		objects:  make(map[string]storedObject),
	}
}
