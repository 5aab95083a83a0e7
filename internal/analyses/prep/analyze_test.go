package prep

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func fixtureJD(t *testing.T) string {
	t.Helper()
	text := "Google is hiring an SDE-1. You will work with React, Node.js, SQL, AWS and System Design. " +
		strings.Repeat("You will collaborate with product and infrastructure teams daily. ", 15)
	if len(text) <= scoreLongTextLength {
		t.Fatalf("fixture text too short: %d chars", len(text))
	}
	return text
}

func TestAnalyzeDeterministicExceptQuestions(t *testing.T) {
	text := fixtureJD(t)
	in := Input{JDText: text, Role: "SDE-1", Company: "Google"}

	a := NewAnalyzer(rand.New(rand.NewSource(1)))
	b := NewAnalyzer(rand.New(rand.NewSource(99)))
	ra := a.Analyze(in)
	rb := b.Analyze(in)

	if !reflect.DeepEqual(ra.Skills, rb.Skills) {
		t.Fatalf("skills diverged: %v vs %v", ra.Skills, rb.Skills)
	}
	if ra.BaseScore != rb.BaseScore {
		t.Fatalf("base score diverged: %d vs %d", ra.BaseScore, rb.BaseScore)
	}
	if !reflect.DeepEqual(ra.Intel, rb.Intel) {
		t.Fatalf("intel diverged: %+v vs %+v", ra.Intel, rb.Intel)
	}
	if !reflect.DeepEqual(ra.Plan, rb.Plan) {
		t.Fatalf("plan diverged: %v vs %v", ra.Plan, rb.Plan)
	}
	if !reflect.DeepEqual(ra.Rounds, rb.Rounds) {
		t.Fatalf("rounds diverged: %v vs %v", ra.Rounds, rb.Rounds)
	}

	pool := make(map[string]bool)
	for _, q := range CandidateQuestions(ra.Skills) {
		pool[q] = true
	}
	for _, res := range []Result{ra, rb} {
		if len(res.Questions) > 10 {
			t.Fatalf("too many questions: %d", len(res.Questions))
		}
		for _, q := range res.Questions {
			if !pool[q] {
				t.Fatalf("question %q not in candidate pool", q)
			}
		}
	}
}

func TestAnalyzeEnterpriseScenario(t *testing.T) {
	text := fixtureJD(t)
	res := NewAnalyzer(rand.New(rand.NewSource(3))).Analyze(Input{
		JDText:  text,
		Role:    "SDE-1",
		Company: "Google",
	})

	if !res.Skills.Contains(CategoryWeb, "React") || !res.Skills.Contains(CategoryWeb, "Node.js") {
		t.Fatalf("web skills = %v, want React and Node.js", res.Skills[CategoryWeb])
	}
	if !res.Skills.Contains(CategoryData, "SQL") {
		t.Fatalf("data skills = %v, want SQL", res.Skills[CategoryData])
	}
	if !res.Skills.Contains(CategoryCloud, "AWS") {
		t.Fatalf("cloud skills = %v, want AWS", res.Skills[CategoryCloud])
	}
	if !res.Skills.Contains(CategoryCoreCS, "System Design") {
		t.Fatalf("coreCS skills = %v, want System Design", res.Skills[CategoryCoreCS])
	}

	// Five populated categories: "Node.js" also satisfies the JS language keyword,
	// so languages joins coreCS, web, data and cloud.
	want := 35 + 5*5 + 10 + 10 + 10
	if res.BaseScore != want {
		t.Fatalf("base score = %d, want %d", res.BaseScore, want)
	}

	if res.Intel.Type != CompanyTypeEnterprise {
		t.Fatalf("company type = %q, want %q", res.Intel.Type, CompanyTypeEnterprise)
	}
	if len(res.Rounds) != 4 {
		t.Fatalf("got %d rounds, want 4", len(res.Rounds))
	}
	// No DSA keyword in the text, so the OS/DBMS variant applies.
	if res.Rounds[1].Description != "Deep dive into OS/DBMS & Coding" {
		t.Fatalf("technical round 1 = %q, want OS/DBMS variant", res.Rounds[1].Description)
	}
}
