package analyses

import (
	"context"
	"time"
)

// UpdateFields carries the mutable fields written by a confidence toggle.
type UpdateFields struct {
	SkillConfidence SkillConfidence
	ReadinessScore  int
	UpdatedAt       time.Time
}

// Repo defines persistence operations for analyses.
type Repo interface {
	Save(ctx context.Context, analysis Analysis) error
	List(ctx context.Context) ([]Analysis, error)
	GetByID(ctx context.Context, analysisID string) (Analysis, error)
	Update(ctx context.Context, analysisID string, fields UpdateFields) (Analysis, error)
	ClearAll(ctx context.Context) error
}
