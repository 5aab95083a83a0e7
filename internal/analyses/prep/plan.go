package prep

import "strings"

// BuildPlan produces the 7-day study plan: a fixed 5-slot skeleton with
// one baseline task per slot, augmented by the detected skills. Tasks keep
// append order, baseline first.
func BuildPlan(skills SkillSet) Plan {
	plan := Plan{
		"Day 1-2": {"Brush up on Aptitude & CS Fundamentals (OOP, DBMS, CN, OS)."},
		"Day 3-4": {"Focus on Data Structures & Algorithms (Arrays, Strings, Trees, Graphs)."},
		"Day 5":   {"Project Deep Dive & Resume Walkthrough."},
		"Day 6":   {"Mock Interviews & Behavioral Questions."},
		"Day 7":   {"Final Revision & Cheat Sheets."},
	}

	if web := skills[CategoryWeb]; len(web) > 0 {
		top := web
		if len(top) > 3 {
			top = top[:3]
		}
		plan["Day 1-2"] = append(plan["Day 1-2"], "Revise Web Fundamentals: "+strings.Join(top, ", ")+".")
		plan["Day 5"] = append(plan["Day 5"], "Prepare to explain architecture of your Web Projects.")
	}
	if len(skills[CategoryData]) > 0 {
		plan["Day 1-2"] = append(plan["Day 1-2"], "Practice complex SQL Queries and Normalization.")
	}
	if skills.Contains(CategoryCoreCS, "System Design") || skills.Contains(CategoryCoreCS, "HLD") {
		plan["Day 3-4"] = append(plan["Day 3-4"], "Review High Level Design concepts (Scalability, Load Balancing).")
	}

	return plan
}
