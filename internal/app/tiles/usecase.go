// Package tiles stores the image artifacts an external renderer produces for
// included chunks.
package tiles

import (
	"context"
	"errors"
	"strings"

	"chunkatlas/internal/app/ports"
	"chunkatlas/internal/domain/atlas"
	"chunkatlas/internal/domain/grid"
)

var ErrInvalidRequest = errors.New("invalid tile upload request")

type Request struct {
	Surface     string
	X, Y        int
	ContentType string
	Image       []byte
}

type Response struct {
	Key string `json:"key"`
}

type UseCase struct {
	Artifacts ports.ArtifactStore
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.Surface) == "" || len(req.Image) == 0 {
		return Response{}, ErrInvalidRequest
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = "image/png"
	}
	key := atlas.ChunkImageKey(req.Surface, grid.Coord{X: req.X, Y: req.Y})
	if err := u.Artifacts.Put(ctx, key, contentType, req.Image); err != nil {
		return Response{}, err
	}
	return Response{Key: key}, nil
}
