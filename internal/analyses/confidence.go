package analyses

const (
	confidenceDelta = 2
	scoreFloor      = 0
	scoreCeiling    = 100
)

// ToggleConfidence flips the confidence for one skill and recomputes the
// readiness score from the creation-time base score. The score is always
// rebuilt from the base, never incremented from the previous readiness
// score, so repeated toggles cannot drift.
func (a Analysis) ToggleConfidence(skill string) (SkillConfidence, int) {
	next := make(SkillConfidence, len(a.SkillConfidence)+1)
	for k, v := range a.SkillConfidence {
		next[k] = v
	}
	if a.SkillConfidence.Get(skill) == ConfidenceKnow {
		next[skill] = ConfidencePractice
	} else {
		next[skill] = ConfidenceKnow
	}

	// Older records predate the split between base and readiness scores.
	base := a.BaseScore
	if base == 0 {
		base = a.ReadinessScore
	}

	score := base
	for _, conf := range next {
		switch conf {
		case ConfidenceKnow:
			score += confidenceDelta
		case ConfidencePractice:
			score -= confidenceDelta
		}
	}
	if score < scoreFloor {
		score = scoreFloor
	}
	if score > scoreCeiling {
		score = scoreCeiling
	}
	return next, score
}
