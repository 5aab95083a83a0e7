package prep

// dsaSkills are the coreCS entries that flag a DSA-heavy technical round.
var dsaSkills = []string{"DSA", "Algorithms", "Data Structures"}

// BuildRounds forecasts the interview stages for the given company type.
// Enterprise processes have four stages, everything else three.
func BuildRounds(companyType string, skills SkillSet) []Round {
	hasDSA := false
	for _, skill := range dsaSkills {
		if skills.Contains(CategoryCoreCS, skill) {
			hasDSA = true
			break
		}
	}
	hasWeb := len(skills[CategoryWeb]) > 0

	if companyType == CompanyTypeEnterprise {
		techRound1 := "Deep dive into OS/DBMS & Coding"
		if hasDSA {
			techRound1 = "Data Structures & Algorithms (Trees, Graphs, DP)"
		}
		return []Round{
			{
				Title:       "Online Assessment",
				Description: "Aptitude + 2 Medium DSA Problems",
				Purpose:     "Filter candidates based on raw problem-solving speed and accuracy.",
			},
			{
				Title:       "Technical Round 1",
				Description: techRound1,
				Purpose:     "Validate strong CS fundamentals and code quality.",
			},
			{
				Title:       "Technical Round 2",
				Description: "System Design (LLD) + Project Deep Dive",
				Purpose:     "Assess capability to build scalable components and understand trade-offs.",
			},
			{
				Title:       "Managerial / HR",
				Description: "Behavioral + Culture Fit",
				Purpose:     "Ensure alignment with company values and long-term retention.",
			},
		}
	}

	screening := "Take-home assignment or Live Coding"
	if hasWeb {
		screening = "Build a small feature (React/Node) in 1-2 hours"
	}
	return []Round{
		{
			Title:       "Screening / Machine Coding",
			Description: screening,
			Purpose:     "Verify hands-on practical coding skills immediately.",
		},
		{
			Title:       "Technical Discussion",
			Description: "Code Review + Architecture Discussion",
			Purpose:     "Check depth of knowledge in your stack and decision-making process.",
		},
		{
			Title:       "Founder / Culture Fit",
			Description: "Product thinking + Alignment",
			Purpose:     "Assess ownership mindset and cultural fit for a fast-paced environment.",
		},
	}
}
