package prep

import (
	"math/rand"
	"time"
)

// Input carries the user-supplied analysis request. Absent fields are
// empty strings, never errors.
type Input struct {
	JDText  string
	Role    string
	Company string
}

// Result is the deterministic output of the pipeline. Only Questions
// depends on the analyzer's random source.
type Result struct {
	Skills    SkillSet
	Intel     CompanyIntel
	BaseScore int
	Plan      Plan
	Rounds    []Round
	Questions []string
}

// Analyzer runs the full analysis pipeline. The random source only feeds
// question selection; everything else is a pure function of the input.
type Analyzer struct {
	rng *rand.Rand
}

// NewAnalyzer constructs an Analyzer. A nil rng gets a time-seeded source.
func NewAnalyzer(rng *rand.Rand) *Analyzer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Analyzer{rng: rng}
}

// Analyze runs extraction, classification, scoring and the generators in
// dependency order and assembles the result. It does not persist anything.
func (a *Analyzer) Analyze(in Input) Result {
	skills := ExtractSkills(in.JDText)
	intel := ClassifyCompany(in.Company, in.JDText)
	score := BaseScore(skills, in.JDText, in.Role, in.Company)
	plan := BuildPlan(skills)
	rounds := BuildRounds(intel.Type, skills)
	questions := SelectQuestions(skills, a.rng)

	return Result{
		Skills:    skills,
		Intel:     intel,
		BaseScore: score,
		Plan:      plan,
		Rounds:    rounds,
		Questions: questions,
	}
}
