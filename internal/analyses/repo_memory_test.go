package analyses

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryRepoListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"a-1", "a-2", "a-3"} {
		if err := repo.Save(ctx, sampleAnalysis(id, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Save %s: %v", id, err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d analyses, want 3", len(got))
	}
	for i, wantID := range []string{"a-3", "a-2", "a-1"} {
		if got[i].ID != wantID {
			t.Fatalf("position %d = %s, want %s", i, got[i].ID, wantID)
		}
	}
}

func TestMemoryRepoGetByIDNotFound(t *testing.T) {
	repo := NewMemoryRepo()
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepoUpdate(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	created := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	if err := repo.Save(ctx, sampleAnalysis("a-1", created)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	updatedAt := created.Add(time.Hour)
	updated, err := repo.Update(ctx, "a-1", UpdateFields{
		SkillConfidence: SkillConfidence{"React": ConfidenceKnow},
		ReadinessScore:  92,
		UpdatedAt:       updatedAt,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ReadinessScore != 92 {
		t.Fatalf("readiness score = %d, want 92", updated.ReadinessScore)
	}
	if updated.SkillConfidence["React"] != ConfidenceKnow {
		t.Fatalf("confidence = %q, want know", updated.SkillConfidence["React"])
	}
	if !updated.UpdatedAt.Equal(updatedAt) {
		t.Fatalf("updatedAt = %v, want %v", updated.UpdatedAt, updatedAt)
	}

	if _, err := repo.Update(ctx, "missing", UpdateFields{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepoClearAll(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	if err := repo.Save(ctx, sampleAnalysis("a-1", time.Now().UTC())); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d analyses after clear, want 0", len(got))
	}
}
