package survey

import (
	"context"
	"errors"
	"strings"

	"chunkatlas/internal/app/ports"
	"chunkatlas/internal/domain/atlas"
	"chunkatlas/internal/domain/grid"
)

var ErrInvalidRequest = errors.New("invalid survey request")

// UseCase ingests a surface survey, replacing any previous survey for the
// same surface.
type UseCase struct {
	Surveys ports.SurveyRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.Surface) == "" {
		return Response{}, ErrInvalidRequest
	}

	chunks := make([]atlas.SurveyChunk, 0, len(req.Chunks))
	seen := make(map[grid.Coord]int, len(req.Chunks))
	seeds := 0
	for _, e := range req.Chunks {
		c := grid.Coord{X: e.X, Y: e.Y}
		if i, ok := seen[c]; ok {
			// Duplicate coordinates collapse; a seed flag on any duplicate
			// wins.
			if e.Seed && !chunks[i].Seed {
				chunks[i].Seed = true
				seeds++
			}
			continue
		}
		seen[c] = len(chunks)
		chunks = append(chunks, atlas.SurveyChunk{Coord: c, Seed: e.Seed})
		if e.Seed {
			seeds++
		}
	}

	tags := 0
	for _, forceTags := range req.Tags {
		tags += len(forceTags)
	}

	if err := u.Surveys.Save(ctx, atlas.Survey{
		Surface: req.Surface,
		Chunks:  chunks,
		Tags:    req.Tags,
	}); err != nil {
		return Response{}, err
	}

	return Response{
		Surface: req.Surface,
		Chunks:  len(chunks),
		Seeds:   seeds,
		Tags:    tags,
	}, nil
}
