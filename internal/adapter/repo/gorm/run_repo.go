package gormrepo

import (
	"context"
	"encoding/json"

	"chunkatlas/internal/adapter/repo/gorm/model"
	"chunkatlas/internal/app/ports"
	"chunkatlas/internal/domain/grid"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RunRepo struct {
	db *gorm.DB
}

func NewRunRepo(db *gorm.DB) RunRepo {
	return RunRepo{db: db}
}

var _ ports.RunRepository = RunRepo{}

func (r RunRepo) Save(ctx context.Context, run ports.ClassificationRun) error {
	row, err := encodeRun(run)
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).Create(&row).Error
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r RunRepo) GetByID(ctx context.Context, id string) (ports.ClassificationRun, error) {
	var row model.ClassificationRun
	err := r.db.WithContext(ctx).
		Where(&model.ClassificationRun{RunID: id}).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ports.ClassificationRun{}, ports.ErrNotFound
		}
		return ports.ClassificationRun{}, err
	}
	return decodeRun(row)
}

func (r RunRepo) LatestBySurface(ctx context.Context, surface string) (ports.ClassificationRun, error) {
	var row model.ClassificationRun
	err := r.db.WithContext(ctx).
		Where(&model.ClassificationRun{SurfaceName: surface}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "created_at"}, Desc: true}},
		}).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ports.ClassificationRun{}, ports.ErrNotFound
		}
		return ports.ClassificationRun{}, err
	}
	return decodeRun(row)
}

func encodeRun(run ports.ClassificationRun) (model.ClassificationRun, error) {
	included, err := json.Marshal(run.Included)
	if err != nil {
		return model.ClassificationRun{}, err
	}
	excluded, err := json.Marshal(run.Excluded)
	if err != nil {
		return model.ClassificationRun{}, err
	}
	return model.ClassificationRun{
		RunID:       run.ID,
		SurfaceName: run.Surface,
		Horizon:     int32(run.Horizon),
		Included:    included,
		Excluded:    excluded,
		CreatedAt:   run.CreatedAt,
	}, nil
}

func decodeRun(row model.ClassificationRun) (ports.ClassificationRun, error) {
	out := ports.ClassificationRun{
		ID:        row.RunID,
		Surface:   row.SurfaceName,
		Horizon:   int(row.Horizon),
		Included:  []grid.Coord{},
		Excluded:  []grid.Excluded{},
		CreatedAt: row.CreatedAt,
	}
	if len(row.Included) > 0 {
		if err := json.Unmarshal(row.Included, &out.Included); err != nil {
			return ports.ClassificationRun{}, err
		}
	}
	if len(row.Excluded) > 0 {
		if err := json.Unmarshal(row.Excluded, &out.Excluded); err != nil {
			return ports.ClassificationRun{}, err
		}
	}
	return out, nil
}
