package analyses

import (
	"fmt"
	"strings"

	"prep-backend/internal/analyses/prep"
)

// RenderReport formats a stored analysis as the plain-text prep plan.
// Output is byte-stable for a given record: every section is emitted in a
// fixed order and the date comes from the record, not the clock.
func RenderReport(a Analysis) string {
	var b strings.Builder

	role := a.Role
	if role == "" {
		role = "N/A"
	}
	b.WriteString("PLACEMENT PREPARATION PLAN\n")
	fmt.Fprintf(&b, "For: %s at %s\n", role, a.CompanyIntel.Name)
	fmt.Fprintf(&b, "Date: %s\n", a.CreatedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "Readiness Score: %d/100\n", a.ReadinessScore)
	fmt.Fprintf(&b, "Company Type: %s\n", a.CompanyIntel.Type)

	b.WriteString("\n--- EXTRACTED SKILLS ---\n")
	for _, cat := range prep.Categories {
		joined := "-"
		if skills := a.ExtractedSkills[cat]; len(skills) > 0 {
			joined = strings.Join(skills, ", ")
		}
		fmt.Fprintf(&b, "%s: %s\n", cat, joined)
	}

	b.WriteString("\n--- ROUND MAPPING ---\n")
	for _, round := range a.RoundMapping {
		fmt.Fprintf(&b, "%s: %s\n", round.Title, round.Description)
	}

	b.WriteString("\n--- 7-DAY PLAN ---\n")
	for _, day := range prep.PlanDays {
		fmt.Fprintf(&b, "%s:\n", day)
		for _, task := range a.Plan[day] {
			fmt.Fprintf(&b, "  - %s\n", task)
		}
	}

	b.WriteString("\n--- QUESTIONS ---\n")
	for i, question := range a.Questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, question)
	}

	return strings.TrimRight(b.String(), "\n")
}

func reportFileName(a Analysis) string {
	company := strings.TrimSpace(a.CompanyIntel.Name)
	if company == "" {
		company = "Unknown Company"
	}
	return "Prep_Plan_" + strings.ReplaceAll(company, " ", "_") + ".txt"
}
