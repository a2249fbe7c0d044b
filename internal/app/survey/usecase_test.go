package survey

import (
	"context"
	"errors"
	"testing"

	"chunkatlas/internal/app/ports"
	"chunkatlas/internal/domain/atlas"
	"chunkatlas/internal/domain/grid"
)

func TestUseCase_RejectsEmptySurface(t *testing.T) {
	uc := UseCase{Surveys: &fakeSurveyRepo{}}
	if _, err := uc.Execute(context.Background(), Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUseCase_DeduplicatesChunksAndCountsSeeds(t *testing.T) {
	repo := &fakeSurveyRepo{}
	uc := UseCase{Surveys: repo}

	resp, err := uc.Execute(context.Background(), Request{
		Surface: "nauvis",
		Chunks: []ChunkEntry{
			{X: 0, Y: 0, Seed: true},
			{X: 1, Y: 0},
			{X: 0, Y: 0}, // duplicate, seed flag already set
			{X: 1, Y: 0, Seed: true},
		},
		Tags: map[string][]atlas.Tag{
			"player": {{Position: atlas.Point{X: 16, Y: 16}, Text: "base"}},
		},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if resp.Chunks != 2 || resp.Seeds != 2 || resp.Tags != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	saved := repo.saved
	if len(saved.Chunks) != 2 {
		t.Fatalf("saved %d chunks, want 2", len(saved.Chunks))
	}
	for _, ch := range saved.Chunks {
		if !ch.Seed {
			t.Fatalf("chunk %v lost its seed flag", ch.Coord)
		}
	}
	if saved.Chunks[0].Coord != (grid.Coord{X: 0, Y: 0}) {
		t.Fatalf("unexpected first chunk: %+v", saved.Chunks[0])
	}
}

func TestUseCase_PropagatesRepoError(t *testing.T) {
	wantErr := errors.New("db down")
	uc := UseCase{Surveys: &fakeSurveyRepo{saveErr: wantErr}}

	if _, err := uc.Execute(context.Background(), Request{Surface: "nauvis"}); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

type fakeSurveyRepo struct {
	saved   atlas.Survey
	saveErr error
}

func (r *fakeSurveyRepo) Save(_ context.Context, survey atlas.Survey) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = survey
	return nil
}

func (r *fakeSurveyRepo) GetBySurface(_ context.Context, _ string) (atlas.Survey, error) {
	return r.saved, nil
}

func (r *fakeSurveyRepo) ListSurfaces(_ context.Context) ([]string, error) {
	return nil, nil
}

var _ ports.SurveyRepository = (*fakeSurveyRepo)(nil)
