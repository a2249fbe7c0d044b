package ports

import (
	"context"
	"time"

	"chunkatlas/internal/domain/atlas"
	"chunkatlas/internal/domain/grid"
)

// ClassificationRun is one persisted classifier outcome for a surface.
type ClassificationRun struct {
	ID        string
	Surface   string
	Horizon   int
	Included  []grid.Coord
	Excluded  []grid.Excluded
	CreatedAt time.Time
}

type SurveyRepository interface {
	Save(ctx context.Context, survey atlas.Survey) error
	GetBySurface(ctx context.Context, surface string) (atlas.Survey, error)
	ListSurfaces(ctx context.Context) ([]string, error)
}

type RunRepository interface {
	Save(ctx context.Context, run ClassificationRun) error
	GetByID(ctx context.Context, id string) (ClassificationRun, error)
	LatestBySurface(ctx context.Context, surface string) (ClassificationRun, error)
}
