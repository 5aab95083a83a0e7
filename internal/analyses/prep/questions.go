package prep

import (
	"math/rand"
	"strings"
)

type bankEntry struct {
	key       string
	questions []string
}

// questionBank maps skills to canned questions. Held as a slice so the
// candidate pool is assembled in a fixed key order.
var questionBank = []bankEntry{
	{key: "React", questions: []string{
		"Explain the Virtual DOM and how it improves performance.",
		"What are React Hooks? Name three common hooks.",
		"Difference between State and Props.",
		"Explain the useEffect dependency array.",
	}},
	{key: "Node.js", questions: []string{
		"Explain the Event Loop in Node.js.",
		"Difference between process.nextTick() and setImmediate().",
		"How does Node.js handle concurrency?",
		"What is Middleware in Express?",
	}},
	{key: "Java", questions: []string{
		"Explain the difference between JDK, JRE, and JVM.",
		"What are the four pillars of OOP?",
		"Difference between Interface and Abstract Class.",
		"Explain Garbage Collection in Java.",
	}},
	{key: "Python", questions: []string{
		"Difference between list and tuple.",
		"Explain decorators in Python.",
		"What is the Global Interpreter Lock (GIL)?",
		"How is memory managed in Python?",
	}},
	{key: "SQL", questions: []string{
		"Explain the difference between DELETE and TRUNCATE.",
		"What are ACID properties?",
		"Explain different types of Joins.",
		"What is Indexing and how does it work?",
	}},
	{key: "DSA", questions: []string{
		"Explain Time and Space Complexity.",
		"Difference between Array and Linked List.",
		"How does a Hash Map work?",
		"Explain QuickSort algorithm.",
	}},
	{key: "System Design", questions: []string{
		"What is Load Balancing?",
		"Explain Horizontal vs Vertical Scaling.",
		"CAP Theorem explained.",
		"How would you design a URL shortener?",
	}},
}

var fillerQuestions = []string{
	"Explain a challenging bug you fixed.",
	"How do you handle tight deadlines?",
}

const (
	maxQuestions    = 10
	minQuestionPool = 5
)

// CandidateQuestions assembles the deterministic question pool for the
// extracted skills. A skill matches a bank key when it equals the key
// case-insensitively or contains it as a substring; every matching key
// contributes all of its questions, so duplicates are possible. Pools
// smaller than five get the generic fillers appended.
func CandidateQuestions(skills SkillSet) []string {
	pool := make([]string, 0, 24)
	for _, skill := range skills.Flatten() {
		lowerSkill := strings.ToLower(skill)
		for _, entry := range questionBank {
			lowerKey := strings.ToLower(entry.key)
			if lowerSkill == lowerKey || strings.Contains(lowerSkill, lowerKey) {
				pool = append(pool, entry.questions...)
			}
		}
	}
	if len(pool) < minQuestionPool {
		pool = append(pool, fillerQuestions...)
	}
	return pool
}

// SelectQuestions returns a uniformly random permutation of the candidate
// pool truncated to ten questions. The random source is injected so tests
// can pin the selection.
func SelectQuestions(skills SkillSet, rng *rand.Rand) []string {
	pool := CandidateQuestions(skills)
	out := append([]string(nil), pool...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if len(out) > maxQuestions {
		out = out[:maxQuestions]
	}
	return out
}
