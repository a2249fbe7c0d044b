package memory

import (
	"context"

	"chunkatlas/internal/app/ports"
)

type RunRepo struct {
	store *Store
}

func NewRunRepo(store *Store) RunRepo {
	return RunRepo{store: store}
}

func (r RunRepo) Save(_ context.Context, run ports.ClassificationRun) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.runs[run.ID]; ok {
		return ports.ErrConflict
	}
	r.store.runs[run.ID] = run
	r.store.runOrder[run.Surface] = append(r.store.runOrder[run.Surface], run.ID)
	return nil
}

func (r RunRepo) GetByID(_ context.Context, id string) (ports.ClassificationRun, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	run, ok := r.store.runs[id]
	if !ok {
		return ports.ClassificationRun{}, ports.ErrNotFound
	}
	return run, nil
}

func (r RunRepo) LatestBySurface(_ context.Context, surface string) (ports.ClassificationRun, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	ids := r.store.runOrder[surface]
	if len(ids) == 0 {
		return ports.ClassificationRun{}, ports.ErrNotFound
	}
	return r.store.runs[ids[len(ids)-1]], nil
}

var _ ports.RunRepository = RunRepo{}
