package gormrepo

import (
	"context"
	"time"

	"chunkatlas/internal/adapter/repo/gorm/model"
	"chunkatlas/internal/app/ports"
	"chunkatlas/internal/domain/atlas"
	"chunkatlas/internal/domain/grid"

	"gorm.io/gorm"
)

const surveyBatchSize = 500

type SurveyRepo struct {
	db *gorm.DB
}

func NewSurveyRepo(db *gorm.DB) SurveyRepo {
	return SurveyRepo{db: db}
}

var _ ports.SurveyRepository = SurveyRepo{}

// Save replaces the stored survey of the surface in one transaction so a
// concurrent classify never sees a half-written survey.
func (r SurveyRepo) Save(ctx context.Context, survey atlas.Survey) error {
	now := time.Now()
	chunkRows := make([]model.SurfaceChunk, 0, len(survey.Chunks))
	for _, ch := range survey.Chunks {
		chunkRows = append(chunkRows, model.SurfaceChunk{
			SurfaceName: survey.Surface,
			ChunkX:      int32(ch.Coord.X),
			ChunkY:      int32(ch.Coord.Y),
			Seed:        ch.Seed,
			UpdatedAt:   now,
		})
	}
	tagRows := make([]model.SurfaceTag, 0)
	for force, tags := range survey.Tags {
		for _, tag := range tags {
			tagRows = append(tagRows, model.SurfaceTag{
				SurfaceName: survey.Surface,
				Force:       force,
				PosX:        tag.Position.X,
				PosY:        tag.Position.Y,
				Text:        tag.Text,
			})
		}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("surface_name = ?", survey.Surface).Delete(&model.SurfaceChunk{}).Error; err != nil {
			return err
		}
		if err := tx.Where("surface_name = ?", survey.Surface).Delete(&model.SurfaceTag{}).Error; err != nil {
			return err
		}
		if len(chunkRows) > 0 {
			if err := tx.CreateInBatches(&chunkRows, surveyBatchSize).Error; err != nil {
				return err
			}
		}
		if len(tagRows) > 0 {
			if err := tx.CreateInBatches(&tagRows, surveyBatchSize).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r SurveyRepo) GetBySurface(ctx context.Context, surface string) (atlas.Survey, error) {
	chunkRows := []model.SurfaceChunk{}
	if err := r.db.WithContext(ctx).
		Where(&model.SurfaceChunk{SurfaceName: surface}).
		Find(&chunkRows).Error; err != nil {
		return atlas.Survey{}, err
	}
	if len(chunkRows) == 0 {
		return atlas.Survey{}, ports.ErrNotFound
	}

	tagRows := []model.SurfaceTag{}
	if err := r.db.WithContext(ctx).
		Where(&model.SurfaceTag{SurfaceName: surface}).
		Find(&tagRows).Error; err != nil {
		return atlas.Survey{}, err
	}

	out := atlas.Survey{Surface: surface}
	for _, row := range chunkRows {
		out.Chunks = append(out.Chunks, atlas.SurveyChunk{
			Coord: grid.Coord{X: int(row.ChunkX), Y: int(row.ChunkY)},
			Seed:  row.Seed,
		})
	}
	if len(tagRows) > 0 {
		out.Tags = map[string][]atlas.Tag{}
		for _, row := range tagRows {
			out.Tags[row.Force] = append(out.Tags[row.Force], atlas.Tag{
				Position: atlas.Point{X: row.PosX, Y: row.PosY},
				Text:     row.Text,
			})
		}
	}
	return out, nil
}

func (r SurveyRepo) ListSurfaces(ctx context.Context) ([]string, error) {
	names := []string{}
	err := r.db.WithContext(ctx).
		Model(&model.SurfaceChunk{}).
		Distinct("surface_name").
		Order("surface_name").
		Pluck("surface_name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
