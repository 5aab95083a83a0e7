package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres. The structured pipeline outputs
// are stored as jsonb columns; scalar fields get their own columns so the
// list ordering and score updates stay in SQL.
type PGRepo struct {
	DB *sql.DB
}

const pgSelectColumns = `id, created_at, updated_at, role, company, jd_text, base_score, readiness_score,
       extracted_skills, skill_confidence, company_intel, plan, round_mapping, questions`

// Save inserts a new analysis.
func (r *PGRepo) Save(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
	id, created_at, updated_at, role, company, jd_text, base_score, readiness_score,
	extracted_skills, skill_confidence, company_intel, plan, round_mapping, questions
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	skills, err := marshalJSONB(analysis.ExtractedSkills)
	if err != nil {
		return err
	}
	confidence, err := marshalJSONB(analysis.SkillConfidence)
	if err != nil {
		return err
	}
	intel, err := marshalJSONB(analysis.CompanyIntel)
	if err != nil {
		return err
	}
	plan, err := marshalJSONB(analysis.Plan)
	if err != nil {
		return err
	}
	rounds, err := marshalJSONB(analysis.RoundMapping)
	if err != nil {
		return err
	}
	questions, err := marshalJSONB(analysis.Questions)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.CreatedAt,
		analysis.UpdatedAt,
		analysis.Role,
		analysis.Company,
		analysis.JDText,
		analysis.BaseScore,
		analysis.ReadinessScore,
		skills,
		confidence,
		intel,
		plan,
		rounds,
		questions,
	)
	return err
}

// List returns all analyses ordered newest-first.
func (r *PGRepo) List(ctx context.Context) ([]Analysis, error) {
	const query = `
SELECT ` + pgSelectColumns + `
FROM analyses
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Analysis{}
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

// GetByID returns an analysis by ID.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	const query = `
SELECT ` + pgSelectColumns + `
FROM analyses
WHERE id = $1
LIMIT 1`

	analysis, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, analysisID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

// Update applies the toggle fields and returns the updated record.
func (r *PGRepo) Update(ctx context.Context, analysisID string, fields UpdateFields) (Analysis, error) {
	const query = `
UPDATE analyses
SET skill_confidence = $1::jsonb,
    readiness_score = $2,
    updated_at = $3
WHERE id = $4`

	confidence, err := marshalJSONB(fields.SkillConfidence)
	if err != nil {
		return Analysis{}, err
	}
	res, err := r.DB.ExecContext(ctx, query, confidence, fields.ReadinessScore, fields.UpdatedAt, analysisID)
	if err != nil {
		return Analysis{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Analysis{}, ErrNotFound
	}
	return r.GetByID(ctx, analysisID)
}

// ClearAll removes every stored analysis.
func (r *PGRepo) ClearAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM analyses`)
	return err
}

var _ Repo = (*PGRepo)(nil)

func marshalJSONB(value any) ([]byte, error) {
	if value == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(value)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var skills, confidence, intel, plan, rounds, questions []byte
	if err := row.Scan(
		&a.ID,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.Role,
		&a.Company,
		&a.JDText,
		&a.BaseScore,
		&a.ReadinessScore,
		&skills,
		&confidence,
		&intel,
		&plan,
		&rounds,
		&questions,
	); err != nil {
		return Analysis{}, err
	}
	// Parse errors leave the field at its zero value rather than failing
	// the whole read.
	_ = json.Unmarshal(skills, &a.ExtractedSkills)
	_ = json.Unmarshal(confidence, &a.SkillConfidence)
	_ = json.Unmarshal(intel, &a.CompanyIntel)
	_ = json.Unmarshal(plan, &a.Plan)
	_ = json.Unmarshal(rounds, &a.RoundMapping)
	_ = json.Unmarshal(questions, &a.Questions)
	return a, nil
}
