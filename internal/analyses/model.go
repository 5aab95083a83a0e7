package analyses

import (
	"time"

	"prep-backend/internal/analyses/prep"
)

// Confidence is the self-assessed level for a single skill.
type Confidence string

const (
	ConfidenceUnset    Confidence = ""
	ConfidenceKnow     Confidence = "know"
	ConfidencePractice Confidence = "practice"
)

// SkillConfidence maps a skill name to its confidence level. Skills the
// user never touched are absent from the map.
type SkillConfidence map[string]Confidence

// Get returns the stored confidence, treating absent entries as practice
// so the first toggle flips them to know.
func (sc SkillConfidence) Get(skill string) Confidence {
	if conf, ok := sc[skill]; ok {
		return conf
	}
	return ConfidencePractice
}

// Analysis is one saved job-description analysis.
type Analysis struct {
	ID              string            `json:"id"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
	Role            string            `json:"role"`
	Company         string            `json:"company"`
	JDText          string            `json:"jdText"`
	ExtractedSkills prep.SkillSet     `json:"extractedSkills"`
	BaseScore       int               `json:"baseScore"`
	ReadinessScore  int               `json:"readinessScore"`
	SkillConfidence SkillConfidence   `json:"skillConfidence"`
	CompanyIntel    prep.CompanyIntel `json:"companyIntel"`
	Plan            prep.Plan         `json:"plan"`
	RoundMapping    []prep.Round      `json:"roundMapping"`
	Questions       []string          `json:"questions"`
}

// wellFormed reports whether a stored record is usable. Records missing an
// ID or creation time are dropped on load rather than surfaced as errors.
func (a Analysis) wellFormed() bool {
	return a.ID != "" && !a.CreatedAt.IsZero()
}
