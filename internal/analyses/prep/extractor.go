package prep

import "strings"

// ExtractSkills classifies the raw text into the fixed skill categories
// using the keyword rule table. Matches are canonical-cased from the
// dictionary and deduplicated per category. If nothing matches anywhere,
// the "other" category receives the default skill set.
func ExtractSkills(text string) SkillSet {
	out := NewSkillSet()
	lower := strings.ToLower(text)

	total := 0
	seen := make(map[Category]map[string]bool, len(Categories))
	for _, rule := range skillRules {
		if !rule.matches(lower) {
			continue
		}
		if seen[rule.Category] == nil {
			seen[rule.Category] = make(map[string]bool, 8)
		}
		if seen[rule.Category][rule.Keyword] {
			continue
		}
		seen[rule.Category][rule.Keyword] = true
		out[rule.Category] = append(out[rule.Category], rule.Keyword)
		total++
	}

	if total == 0 {
		out[CategoryOther] = append([]string{}, defaultOtherSkills...)
	}
	return out
}
