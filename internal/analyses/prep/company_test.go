package prep

import (
	"reflect"
	"testing"
)

func TestClassifyCompanyEnterprise(t *testing.T) {
	intel := ClassifyCompany("Google India", "Looking for an SDE.")
	if intel.Type != CompanyTypeEnterprise {
		t.Fatalf("type = %q, want %q", intel.Type, CompanyTypeEnterprise)
	}
	if intel.Size != "2000+ Employees" {
		t.Fatalf("size = %q, want 2000+ Employees", intel.Size)
	}
	if intel.Focus != "Scale & Fundamentals" {
		t.Fatalf("focus = %q, want Scale & Fundamentals", intel.Focus)
	}
}

func TestClassifyCompanyMidSizeMarker(t *testing.T) {
	intel := ClassifyCompany("Shipwell", "An established player in logistics.")
	if intel.Type != CompanyTypeMidSize {
		t.Fatalf("type = %q, want %q", intel.Type, CompanyTypeMidSize)
	}
	if intel.Size != "200-2000 Employees" {
		t.Fatalf("size = %q, want 200-2000 Employees", intel.Size)
	}
	// Markers only upgrade type and size, not focus.
	if intel.Focus != "Product & Speed" {
		t.Fatalf("focus = %q, want Product & Speed", intel.Focus)
	}
}

func TestClassifyCompanyStartupDefault(t *testing.T) {
	intel := ClassifyCompany("Acme Corp", "Small team, big dreams.")
	want := CompanyIntel{
		Name:     "Acme Corp",
		Type:     CompanyTypeStartup,
		Size:     "< 200 Employees",
		Focus:    "Product & Speed",
		Industry: "Technology",
	}
	if !reflect.DeepEqual(intel, want) {
		t.Fatalf("intel = %+v, want %+v", intel, want)
	}
}

func TestClassifyCompanyAbsent(t *testing.T) {
	intel := ClassifyCompany("", "A Fintech scale-up with global reach.")
	if intel.Name != "Unknown Company" {
		t.Fatalf("name = %q, want Unknown Company", intel.Name)
	}
	if intel.Type != CompanyTypeStartup {
		t.Fatalf("type = %q, want %q", intel.Type, CompanyTypeStartup)
	}
	// No marker scan runs without a company name.
	if intel.Industry != "Technology" {
		t.Fatalf("industry = %q, want Technology", intel.Industry)
	}
}

func TestClassifyCompanyIndustryLastMatchWins(t *testing.T) {
	intel := ClassifyCompany("Acme Corp", "A Fintech product sold B2B to banks.")
	if intel.Industry != "SaaS" {
		t.Fatalf("industry = %q, want SaaS", intel.Industry)
	}
}

func TestClassifyCompanyMarkersCaseSensitive(t *testing.T) {
	intel := ClassifyCompany("Acme Corp", "a fintech startup")
	if intel.Industry != "Technology" {
		t.Fatalf("industry = %q, want Technology", intel.Industry)
	}
}
