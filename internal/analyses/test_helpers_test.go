package analyses

import (
	"time"

	"prep-backend/internal/analyses/prep"
)

// sampleAnalysis builds a fully populated record for repo and report tests.
func sampleAnalysis(id string, createdAt time.Time) Analysis {
	skills := prep.NewSkillSet()
	skills[prep.CategoryCoreCS] = []string{"System Design"}
	skills[prep.CategoryLanguages] = []string{"JS"}
	skills[prep.CategoryWeb] = []string{"React", "Node.js"}
	skills[prep.CategoryData] = []string{"SQL"}
	skills[prep.CategoryCloud] = []string{"AWS"}

	return Analysis{
		ID:              id,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
		Role:            "SDE-1",
		Company:         "Google",
		JDText:          "React, Node.js, SQL, AWS and System Design.",
		ExtractedSkills: skills,
		BaseScore:       90,
		ReadinessScore:  90,
		SkillConfidence: SkillConfidence{},
		CompanyIntel: prep.CompanyIntel{
			Name:     "Google",
			Type:     prep.CompanyTypeEnterprise,
			Size:     "2000+ Employees",
			Focus:    "Scale & Fundamentals",
			Industry: "Technology",
		},
		Plan:         prep.BuildPlan(skills),
		RoundMapping: prep.BuildRounds(prep.CompanyTypeEnterprise, skills),
		Questions: []string{
			"Explain the Virtual DOM and how it improves performance.",
			"What is Load Balancing?",
		},
	}
}
