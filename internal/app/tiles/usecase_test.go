package tiles

import (
	"context"
	"errors"
	"testing"

	"chunkatlas/internal/app/ports"
)

func TestUseCase_RejectsEmptyImage(t *testing.T) {
	uc := UseCase{Artifacts: &fakeArtifacts{}}
	_, err := uc.Execute(context.Background(), Request{Surface: "nauvis"})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUseCase_StoresImageUnderChunkKey(t *testing.T) {
	store := &fakeArtifacts{}
	uc := UseCase{Artifacts: store}

	resp, err := uc.Execute(context.Background(), Request{
		Surface: "nauvis",
		X:       -1,
		Y:       4,
		Image:   []byte{0x89, 0x50},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if resp.Key != "chunks/nauvis/-1,4.png" {
		t.Fatalf("unexpected key: %q", resp.Key)
	}
	if store.key != resp.Key || store.contentType != "image/png" {
		t.Fatalf("unexpected put: key=%q type=%q", store.key, store.contentType)
	}
}

type fakeArtifacts struct {
	key         string
	contentType string
	data        []byte
}

func (f *fakeArtifacts) Put(_ context.Context, key, contentType string, data []byte) error {
	f.key, f.contentType, f.data = key, contentType, data
	return nil
}

func (f *fakeArtifacts) Get(_ context.Context, _ string) ([]byte, error) {
	return nil, ports.ErrNotFound
}

var _ ports.ArtifactStore = (*fakeArtifacts)(nil)
