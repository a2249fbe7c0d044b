package classify

import (
	"context"
	"errors"
	"strings"
	"time"

	"chunkatlas/internal/app/ports"
	"chunkatlas/internal/domain/grid"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid classify request")

// UseCase runs the chunk visibility classifier over a stored survey and
// persists the outcome as an auditable run.
type UseCase struct {
	Surveys ports.SurveyRepository
	Runs    ports.RunRepository
	// DefaultHorizon applies when the request does not override it; nil
	// means grid.DefaultHorizon. A configured zero is a real horizon, not
	// an absent one.
	DefaultHorizon *int
	Now            func() time.Time
	NewID          func() string
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.Surface) == "" {
		return Response{}, ErrInvalidRequest
	}

	horizon := grid.DefaultHorizon
	if u.DefaultHorizon != nil {
		horizon = *u.DefaultHorizon
	}
	if req.Horizon != nil {
		horizon = *req.Horizon
	}

	sv, err := u.Surveys.GetBySurface(ctx, req.Surface)
	if err != nil {
		return Response{}, err
	}

	result, err := grid.Classify(sv.Index(), horizon)
	if err != nil {
		return Response{}, err
	}

	run := ports.ClassificationRun{
		ID:        u.newID(),
		Surface:   req.Surface,
		Horizon:   horizon,
		Included:  result.Included,
		Excluded:  result.Excluded,
		CreatedAt: u.now(),
	}
	if err := u.Runs.Save(ctx, run); err != nil {
		return Response{}, err
	}

	return toResponse(run, result.Components), nil
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now().UTC()
}

func (u UseCase) newID() string {
	if u.NewID != nil {
		return u.NewID()
	}
	return uuid.NewString()
}

// GetUseCase fetches a persisted run.
type GetUseCase struct {
	Runs ports.RunRepository
}

func (u GetUseCase) Execute(ctx context.Context, req GetRequest) (Response, error) {
	if strings.TrimSpace(req.RunID) == "" {
		return Response{}, ErrInvalidRequest
	}
	run, err := u.Runs.GetByID(ctx, req.RunID)
	if err != nil {
		return Response{}, err
	}
	return toResponse(run, 0), nil
}

func toResponse(run ports.ClassificationRun, components int) Response {
	return Response{
		RunID:      run.ID,
		Surface:    run.Surface,
		Horizon:    run.Horizon,
		Included:   run.Included,
		Excluded:   run.Excluded,
		Components: components,
		CreatedAt:  run.CreatedAt,
	}
}
