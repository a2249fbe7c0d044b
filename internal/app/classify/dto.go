package classify

import (
	"time"

	"chunkatlas/internal/domain/grid"
)

type Request struct {
	Surface string
	// Horizon overrides the configured default when non-nil. Zero is a valid
	// override; negative values are rejected by the classifier.
	Horizon *int
}

type Response struct {
	RunID      string          `json:"run_id"`
	Surface    string          `json:"surface"`
	Horizon    int             `json:"horizon"`
	Included   []grid.Coord    `json:"included"`
	Excluded   []grid.Excluded `json:"excluded"`
	Components int             `json:"components,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

type GetRequest struct {
	RunID string
}
