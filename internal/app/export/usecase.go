// Package export assembles the viewer descriptor from the latest
// classification run of each surface and publishes it to the artifact store.
package export

import (
	"context"
	"encoding/json"
	"errors"

	"chunkatlas/internal/app/ports"
	"chunkatlas/internal/domain/atlas"
)

// ErrNothingToExport is returned when no requested surface has a
// classification run yet.
var ErrNothingToExport = errors.New("no classified surfaces to export")

type UseCase struct {
	Surveys   ports.SurveyRepository
	Runs      ports.RunRepository
	Artifacts ports.ArtifactStore
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	surfaces := req.Surfaces
	if len(surfaces) == 0 {
		var err error
		surfaces, err = u.Surveys.ListSurfaces(ctx)
		if err != nil {
			return Response{}, err
		}
	}

	descriptor := atlas.Descriptor{
		Surfaces:  make(map[string]atlas.SurfaceDescriptor),
		Extension: atlas.TileExtension,
	}
	tileCount := 0
	for _, name := range surfaces {
		run, err := u.Runs.LatestBySurface(ctx, name)
		if errors.Is(err, ports.ErrNotFound) {
			continue
		}
		if err != nil {
			return Response{}, err
		}
		sv, err := u.Surveys.GetBySurface(ctx, name)
		if err != nil {
			return Response{}, err
		}

		tiles := make([][3]int, 0)
		for _, tile := range atlas.Pyramid(name, run.Included) {
			tiles = append(tiles, tile.PartComponents()...)
		}
		tags := sv.Tags
		if tags == nil {
			tags = map[string][]atlas.Tag{}
		}
		descriptor.Surfaces[name] = atlas.SurfaceDescriptor{Tiles: tiles, Tags: tags}
		tileCount += len(tiles)
	}
	if len(descriptor.Surfaces) == 0 {
		return Response{}, ErrNothingToExport
	}

	data, err := json.Marshal(descriptor)
	if err != nil {
		return Response{}, err
	}
	if err := u.Artifacts.Put(ctx, atlas.DescriptorKey, "application/json", data); err != nil {
		return Response{}, err
	}

	return Response{
		Key:        atlas.DescriptorKey,
		Descriptor: descriptor,
		Surfaces:   len(descriptor.Surfaces),
		Tiles:      tileCount,
	}, nil
}
