package prep

import "strings"

var enterpriseCompanies = []string{
	"Google", "Amazon", "Microsoft", "Meta", "Facebook", "Apple", "Netflix",
	"TCS", "Infosys", "Wipro", "Accenture", "Cognizant", "IBM", "Oracle",
	"Cisco", "Intel", "Samsung", "Adobe", "Salesforce", "SAP", "Deloitte",
	"Goldman Sachs",
}

// midSizeMarkers are matched case-sensitively against the raw text.
var midSizeMarkers = []string{"global", "multinational", "established"}

type industryMarker struct {
	markers  []string
	industry string
}

// industryMarkers are checked in order without early exit; a later match
// overwrites an earlier one. Matching is case-sensitive.
var industryMarkers = []industryMarker{
	{markers: []string{"Fintech", "financial"}, industry: "Fintech"},
	{markers: []string{"Healthcare", "medical"}, industry: "HealthTech"},
	{markers: []string{"E-commerce", "retail"}, industry: "E-commerce"},
	{markers: []string{"SaaS", "B2B"}, industry: "SaaS"},
}

// ClassifyCompany infers employer type, size, focus and industry from the
// company name and the job description text.
func ClassifyCompany(company, text string) CompanyIntel {
	intel := CompanyIntel{
		Name:     company,
		Type:     CompanyTypeStartup,
		Size:     "< 200 Employees",
		Focus:    "Product & Speed",
		Industry: "Technology",
	}
	if company == "" {
		intel.Name = "Unknown Company"
		return intel
	}

	lowerCompany := strings.ToLower(company)
	isEnterprise := false
	for _, name := range enterpriseCompanies {
		if strings.Contains(lowerCompany, strings.ToLower(name)) {
			isEnterprise = true
			break
		}
	}
	if isEnterprise {
		intel.Type = CompanyTypeEnterprise
		intel.Size = "2000+ Employees"
		intel.Focus = "Scale & Fundamentals"
	} else {
		for _, marker := range midSizeMarkers {
			if strings.Contains(text, marker) {
				intel.Type = CompanyTypeMidSize
				intel.Size = "200-2000 Employees"
				break
			}
		}
	}

	for _, group := range industryMarkers {
		for _, marker := range group.markers {
			if strings.Contains(text, marker) {
				intel.Industry = group.industry
				break
			}
		}
	}

	return intel
}
