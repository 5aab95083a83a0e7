package prep

const (
	scoreBaseline       = 35
	scorePerCategory    = 5
	scoreCategoryCap    = 30
	scoreCompanyBonus   = 10
	scoreRoleBonus      = 10
	scoreLongTextBonus  = 10
	scoreLongTextLength = 800
	scoreMax            = 100
)

// BaseScore computes the immutable creation-time readiness score from
// extraction breadth and input completeness. It is a pure function:
// identical inputs always yield an identical score.
func BaseScore(skills SkillSet, text, role, company string) int {
	score := scoreBaseline

	categoryPoints := skills.PopulatedCount() * scorePerCategory
	if categoryPoints > scoreCategoryCap {
		categoryPoints = scoreCategoryCap
	}
	score += categoryPoints

	if company != "" {
		score += scoreCompanyBonus
	}
	if role != "" {
		score += scoreRoleBonus
	}
	if len(text) > scoreLongTextLength {
		score += scoreLongTextBonus
	}

	if score > scoreMax {
		score = scoreMax
	}
	return score
}
