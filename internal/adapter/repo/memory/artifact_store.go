package memory

import (
	"context"

	"chunkatlas/internal/app/ports"
)

type ArtifactStore struct {
	store *Store
}

func NewArtifactStore(store *Store) ArtifactStore {
	return ArtifactStore{store: store}
}

func (s ArtifactStore) Put(_ context.Context, key, contentType string, data []byte) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	copied := make([]byte, len(data))
	copy(copied, data)
	s.store.objects[key] = storedObject{contentType: contentType, data: copied}
	return nil
}

func (s ArtifactStore) Get(_ context.Context, key string) ([]byte, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	obj, ok := s.store.objects[key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return obj.data, nil
}

var _ ports.ArtifactStore = ArtifactStore{}
