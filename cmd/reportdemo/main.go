package main

// Render a prep report from a job description on stdin:
//   go run ./cmd/reportdemo -role "SDE-1" -company "Google" < jd.txt

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"prep-backend/internal/analyses"
	"prep-backend/internal/analyses/prep"
)

func main() {
	role := flag.String("role", "", "target role")
	company := flag.String("company", "", "target company")
	flag.Parse()

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
		os.Exit(1)
	}

	result := prep.NewAnalyzer(nil).Analyze(prep.Input{
		JDText:  string(raw),
		Role:    *role,
		Company: *company,
	})

	now := time.Now().UTC()
	analysis := analyses.Analysis{
		ID:              uuid.NewString(),
		CreatedAt:       now,
		UpdatedAt:       now,
		Role:            *role,
		Company:         *company,
		JDText:          string(raw),
		ExtractedSkills: result.Skills,
		BaseScore:       result.BaseScore,
		ReadinessScore:  result.BaseScore,
		CompanyIntel:    result.Intel,
		Plan:            result.Plan,
		RoundMapping:    result.Rounds,
		Questions:       result.Questions,
	}

	fmt.Println(analyses.RenderReport(analysis))
}
