package analyses

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

const historyFileName = "prep_history.json"

// FileRepo persists analyses as a single JSON array on disk. Every write
// rewrites the whole file, which keeps the format trivially inspectable
// and matches the small history sizes this store is meant for.
type FileRepo struct {
	mu   sync.Mutex
	path string
}

// NewFileRepo constructs a FileRepo rooted at dir.
func NewFileRepo(dir string) *FileRepo {
	return &FileRepo{path: filepath.Join(dir, historyFileName)}
}

// load reads the history file. A missing or corrupt file degrades to an
// empty history instead of an error; malformed records are dropped.
func (r *FileRepo) load() []Analysis {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return []Analysis{}
	}
	var records []Analysis
	if err := json.Unmarshal(raw, &records); err != nil {
		return []Analysis{}
	}
	out := records[:0]
	for _, record := range records {
		if record.wellFormed() {
			out = append(out, record)
		}
	}
	return out
}

func (r *FileRepo) store(records []Analysis) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, payload, 0o644)
}

// Save appends or replaces the analysis and rewrites the history file.
func (r *FileRepo) Save(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	records := r.load()
	replaced := false
	for i := range records {
		if records[i].ID == analysis.ID {
			records[i] = analysis
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, analysis)
	}
	return r.store(records)
}

// List returns all analyses, newest first.
func (r *FileRepo) List(ctx context.Context) ([]Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	records := r.load()
	r.mu.Unlock()

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

// GetByID returns an analysis by its ID.
func (r *FileRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range r.load() {
		if record.ID == analysisID {
			return record, nil
		}
	}
	return Analysis{}, ErrNotFound
}

// Update applies the toggle fields to an existing analysis.
func (r *FileRepo) Update(ctx context.Context, analysisID string, fields UpdateFields) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	records := r.load()
	for i := range records {
		if records[i].ID != analysisID {
			continue
		}
		records[i].SkillConfidence = fields.SkillConfidence
		records[i].ReadinessScore = fields.ReadinessScore
		records[i].UpdatedAt = fields.UpdatedAt
		if err := r.store(records); err != nil {
			return Analysis{}, err
		}
		return records[i], nil
	}
	return Analysis{}, ErrNotFound
}

// ClearAll removes the history file.
func (r *FileRepo) ClearAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

var _ Repo = (*FileRepo)(nil)
