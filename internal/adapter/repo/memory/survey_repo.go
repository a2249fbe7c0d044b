package memory

import (
	"context"
	"sort"

	"chunkatlas/internal/app/ports"
	"chunkatlas/internal/domain/atlas"
)

type SurveyRepo struct {
	store *Store
}

func NewSurveyRepo(store *Store) SurveyRepo {
	return SurveyRepo{store: store}
}

func (r SurveyRepo) Save(_ context.Context, survey atlas.Survey) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.surveys[survey.Surface] = survey
	return nil
}

func (r SurveyRepo) GetBySurface(_ context.Context, surface string) (atlas.Survey, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	sv, ok := r.store.surveys[surface]
	if !ok {
		return atlas.Survey{}, ports.ErrNotFound
	}
	return sv, nil
}

func (r SurveyRepo) ListSurfaces(_ context.Context) ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	names := make([]string, 0, len(r.store.surveys))
	for name := range r.store.surveys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

var _ ports.SurveyRepository = SurveyRepo{}
