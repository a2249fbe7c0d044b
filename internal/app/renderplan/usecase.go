package renderplan

import (
	"context"
	"errors"
	"strings"

	"chunkatlas/internal/app/ports"
	"chunkatlas/internal/domain/atlas"
)

var ErrInvalidRequest = errors.New("invalid render plan request")

// UseCase turns a classification run into the list of chunk captures an
// external renderer must produce.
type UseCase struct {
	Runs ports.RunRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.RunID) == "" {
		return Response{}, ErrInvalidRequest
	}
	run, err := u.Runs.GetByID(ctx, req.RunID)
	if err != nil {
		return Response{}, err
	}

	jobs := make([]Job, 0, len(run.Included))
	for _, c := range run.Included {
		jobs = append(jobs, Job{
			X:           c.X,
			Y:           c.Y,
			ArtifactKey: atlas.ChunkImageKey(run.Surface, c),
		})
	}
	return Response{RunID: run.ID, Surface: run.Surface, Jobs: jobs}, nil
}
