package prep

import (
	"regexp"
	"strings"
)

// MatchMode selects how a keyword is matched against the text.
type MatchMode int

const (
	// MatchWholeWord matches the keyword between word boundaries.
	MatchWholeWord MatchMode = iota
	// MatchSubstring matches by plain containment. Used for keywords
	// bearing non-word characters, where boundaries are undefined.
	MatchSubstring
)

// KeywordRule is one row of the extraction table.
type KeywordRule struct {
	Category Category
	Keyword  string
	Mode     MatchMode

	pattern *regexp.Regexp
}

func (r KeywordRule) matches(lowerText string) bool {
	if r.Mode == MatchSubstring {
		return strings.Contains(lowerText, strings.ToLower(r.Keyword))
	}
	return r.pattern.MatchString(lowerText)
}

var skillDictionary = map[Category][]string{
	CategoryCoreCS: {
		"DSA", "Data Structures", "Algorithms", "OOP", "Object Oriented",
		"DBMS", "Database Management", "OS", "Operating Systems", "Networks",
		"Computer Networks", "System Design", "Low Level Design",
		"High Level Design", "LLD", "HLD",
	},
	CategoryLanguages: {
		"Java", "Python", "JavaScript", "JS", "TypeScript", "TS", "C++",
		"C#", "Golang", "Go", "Ruby", "Swift", "Kotlin", "Rust", "PHP",
	},
	CategoryWeb: {
		"React", "React.js", "Next.js", "Node", "Node.js", "Express", "Vue",
		"Angular", "HTML", "CSS", "Tailwind", "Bootstrap", "REST", "GraphQL",
		"API",
	},
	CategoryData: {
		"SQL", "MySQL", "PostgreSQL", "Postgres", "MongoDB", "Mongo",
		"Redis", "Cassandra", "Elasticsearch", "Kafka", "Spark", "Hadoop",
	},
	CategoryCloud: {
		"AWS", "Azure", "GCP", "Docker", "Kubernetes", "K8s", "CI/CD",
		"Jenkins", "GitHub Actions", "Terraform", "Linux", "Bash", "Shell",
	},
	CategoryTesting: {
		"Selenium", "Cypress", "Playwright", "Jest", "Mocha", "JUnit",
		"PyTest", "Manual Testing",
	},
}

// defaultOtherSkills is assigned to the "other" category when no keyword
// matches anywhere in the text.
var defaultOtherSkills = []string{"Communication", "Problem Solving", "Basic Coding", "Projects"}

// skillRules is the flattened rule table, in category then dictionary order.
var skillRules = buildRules()

var wordOnly = regexp.MustCompile(`^\w+$`)

func buildRules() []KeywordRule {
	rules := make([]KeywordRule, 0, 96)
	for _, cat := range Categories {
		for _, keyword := range skillDictionary[cat] {
			rule := KeywordRule{Category: cat, Keyword: keyword, Mode: MatchWholeWord}
			if !wordOnly.MatchString(keyword) {
				rule.Mode = MatchSubstring
			} else {
				rule.pattern = regexp.MustCompile(`\b` + strings.ToLower(keyword) + `\b`)
			}
			rules = append(rules, rule)
		}
	}
	return rules
}
