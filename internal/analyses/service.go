package analyses

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"prep-backend/internal/analyses/prep"
	"prep-backend/internal/shared/metrics"
	"prep-backend/internal/shared/telemetry"
)

// Service contains business logic for analyses.
type Service struct {
	Repo     Repo
	Analyzer *prep.Analyzer

	// CreateDelay holds the analysis response back to make the progress
	// states visible in the UI. Zero disables it.
	CreateDelay time.Duration

	creating atomic.Bool
	now      func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo, analyzer *prep.Analyzer) *Service {
	if analyzer == nil {
		analyzer = prep.NewAnalyzer(nil)
	}
	return &Service{
		Repo:     repo,
		Analyzer: analyzer,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create runs the analysis pipeline on the input and persists the result.
// Only one creation may be in flight at a time; concurrent attempts fail
// with ErrCreationInFlight instead of queueing.
func (s *Service) Create(ctx context.Context, in prep.Input) (Analysis, error) {
	if in.JDText == "" {
		return Analysis{}, errors.New("jdText is required")
	}
	if !s.creating.CompareAndSwap(false, true) {
		return Analysis{}, ErrCreationInFlight
	}
	defer s.creating.Store(false)

	if s.CreateDelay > 0 {
		select {
		case <-time.After(s.CreateDelay):
		case <-ctx.Done():
			return Analysis{}, ctx.Err()
		}
	}

	start := time.Now()
	result := s.Analyzer.Analyze(in)
	now := s.now()

	analysis := Analysis{
		ID:              uuid.NewString(),
		CreatedAt:       now,
		UpdatedAt:       now,
		Role:            in.Role,
		Company:         in.Company,
		JDText:          in.JDText,
		ExtractedSkills: result.Skills,
		BaseScore:       result.BaseScore,
		ReadinessScore:  result.BaseScore,
		SkillConfidence: SkillConfidence{},
		CompanyIntel:    result.Intel,
		Plan:            result.Plan,
		RoundMapping:    result.Rounds,
		Questions:       result.Questions,
	}

	if err := s.Repo.Save(ctx, analysis); err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Error("analysis.save_failed", map[string]any{
			"analysis_id": analysis.ID,
			"error":       err.Error(),
		})
		return Analysis{}, err
	}

	metrics.IncAnalysisCreated()
	metrics.ObserveAnalysisDuration(time.Since(start))
	telemetry.Info("analysis.created", map[string]any{
		"analysis_id":  analysis.ID,
		"company_type": analysis.CompanyIntel.Type,
		"base_score":   analysis.BaseScore,
	})
	return analysis, nil
}

// Get returns a stored analysis.
func (s *Service) Get(ctx context.Context, analysisID string) (Analysis, error) {
	return s.Repo.GetByID(ctx, analysisID)
}

// List returns all stored analyses, newest first.
func (s *Service) List(ctx context.Context) ([]Analysis, error) {
	return s.Repo.List(ctx)
}

// Toggle flips the confidence for one skill on a stored analysis and
// persists the rescored record.
func (s *Service) Toggle(ctx context.Context, analysisID, skill string) (Analysis, error) {
	analysis, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		return Analysis{}, err
	}

	confidence, score := analysis.ToggleConfidence(skill)
	updated, err := s.Repo.Update(ctx, analysisID, UpdateFields{
		SkillConfidence: confidence,
		ReadinessScore:  score,
		UpdatedAt:       s.now(),
	})
	if err != nil {
		return Analysis{}, err
	}

	metrics.IncToggleApplied()
	telemetry.Info("analysis.toggled", map[string]any{
		"analysis_id":     analysisID,
		"skill":           skill,
		"readiness_score": score,
	})
	return updated, nil
}

// ClearAll removes the entire history.
func (s *Service) ClearAll(ctx context.Context) error {
	return s.Repo.ClearAll(ctx)
}
