package prep

// Category identifies one of the fixed skill buckets an analysis reports.
type Category string

const (
	CategoryCoreCS    Category = "coreCS"
	CategoryLanguages Category = "languages"
	CategoryWeb       Category = "web"
	CategoryData      Category = "data"
	CategoryCloud     Category = "cloud"
	CategoryTesting   Category = "testing"
	CategoryOther     Category = "other"
)

// Categories lists every category in presentation order.
var Categories = []Category{
	CategoryCoreCS,
	CategoryLanguages,
	CategoryWeb,
	CategoryData,
	CategoryCloud,
	CategoryTesting,
	CategoryOther,
}

// SkillSet maps each category to its deduplicated canonical skill names.
// Every key in Categories is always present, possibly with an empty slice.
type SkillSet map[Category][]string

// NewSkillSet returns a SkillSet with all categories present and empty.
func NewSkillSet() SkillSet {
	out := make(SkillSet, len(Categories))
	for _, cat := range Categories {
		out[cat] = []string{}
	}
	return out
}

// PopulatedCount returns the number of categories with at least one skill.
func (s SkillSet) PopulatedCount() int {
	count := 0
	for _, cat := range Categories {
		if len(s[cat]) > 0 {
			count++
		}
	}
	return count
}

// Flatten returns all skills in category order.
func (s SkillSet) Flatten() []string {
	out := make([]string, 0, 16)
	for _, cat := range Categories {
		out = append(out, s[cat]...)
	}
	return out
}

// Contains reports whether the category holds the exact skill name.
func (s SkillSet) Contains(cat Category, skill string) bool {
	for _, have := range s[cat] {
		if have == skill {
			return true
		}
	}
	return false
}

// Company types produced by the classifier.
const (
	CompanyTypeStartup    = "Startup"
	CompanyTypeMidSize    = "Mid-Size"
	CompanyTypeEnterprise = "Enterprise"
)

// CompanyIntel is the heuristic employer classification.
type CompanyIntel struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Size     string `json:"size"`
	Focus    string `json:"focus"`
	Industry string `json:"industry"`
}

// Round is one forecast interview stage.
type Round struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Purpose     string `json:"purpose"`
}

// Plan maps a day label to its ordered task list.
type Plan map[string][]string

// PlanDays lists the plan slots in calendar order.
var PlanDays = []string{"Day 1-2", "Day 3-4", "Day 5", "Day 6", "Day 7"}
