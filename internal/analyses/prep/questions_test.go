package prep

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestCandidateQuestionsMatchesByEqualityAndContainment(t *testing.T) {
	skills := NewSkillSet()
	skills[CategoryWeb] = []string{"React"}
	// Four React questions plus the two fillers appended below five.
	if got := CandidateQuestions(skills); len(got) != 6 {
		t.Fatalf("pool size = %d, want 6", len(got))
	}

	skills[CategoryWeb] = []string{"React.js"}
	if got := CandidateQuestions(skills); len(got) != 6 {
		t.Fatalf("containment pool size = %d, want 6", len(got))
	}
}

func TestCandidateQuestionsAllowsDuplicates(t *testing.T) {
	skills := NewSkillSet()
	skills[CategoryLanguages] = []string{"Java", "JavaScript"}
	// Both skills contain "java", so the Java questions appear twice.
	if got := CandidateQuestions(skills); len(got) != 8 {
		t.Fatalf("pool size = %d, want 8", len(got))
	}
}

func TestCandidateQuestionsFillerPadding(t *testing.T) {
	got := CandidateQuestions(NewSkillSet())
	want := []string{
		"Explain a challenging bug you fixed.",
		"How do you handle tight deadlines?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("pool = %v, want fillers only", got)
	}
}

func TestSelectQuestionsBoundedAndDrawnFromPool(t *testing.T) {
	skills := NewSkillSet()
	skills[CategoryWeb] = []string{"React", "Node.js"}
	skills[CategoryData] = []string{"SQL"}
	skills[CategoryCoreCS] = []string{"DSA"}

	pool := CandidateQuestions(skills)
	if len(pool) != 16 {
		t.Fatalf("pool size = %d, want 16", len(pool))
	}
	inPool := make(map[string]bool, len(pool))
	for _, q := range pool {
		inPool[q] = true
	}

	got := SelectQuestions(skills, rand.New(rand.NewSource(7)))
	if len(got) != 10 {
		t.Fatalf("selected %d questions, want 10", len(got))
	}
	for _, q := range got {
		if !inPool[q] {
			t.Fatalf("selected question %q not in candidate pool", q)
		}
	}
}

func TestSelectQuestionsSeedPinsOutput(t *testing.T) {
	skills := NewSkillSet()
	skills[CategoryWeb] = []string{"React", "Node.js"}

	first := SelectQuestions(skills, rand.New(rand.NewSource(42)))
	second := SelectQuestions(skills, rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed diverged: %v vs %v", first, second)
	}
}

func TestSelectQuestionsShortPoolReturnsAll(t *testing.T) {
	got := SelectQuestions(NewSkillSet(), rand.New(rand.NewSource(1)))
	if len(got) != 2 {
		t.Fatalf("selected %d questions, want the 2 fillers", len(got))
	}
}
