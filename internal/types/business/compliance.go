package business

import "strings"

// ComplianceStatus is the service's overall compliance verdict.
type ComplianceStatus string

const (
	StatusFullyCompliant  ComplianceStatus = "Fully Compliant"
	StatusMostlyCompliant ComplianceStatus = "Mostly Compliant"
	StatusNonCompliant    ComplianceStatus = "Non-Compliant"
	StatusUnderReview     ComplianceStatus = "Under Review"
)

// IsKnown reports whether s is one of the declared statuses.
func (s ComplianceStatus) IsKnown() bool {
	switch s {
	case StatusFullyCompliant, StatusMostlyCompliant, StatusNonCompliant, StatusUnderReview:
		return true
	default:
		return false
	}
}

// RiskLevel is the coarse three-tier risk classification.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Normalize returns the canonical spelling of a known risk level, matching
// case-insensitively. Unknown values are returned unchanged.
func (r RiskLevel) Normalize() RiskLevel {
	switch strings.ToLower(strings.TrimSpace(string(r))) {
	case "low":
		return RiskLow
	case "medium":
		return RiskMedium
	case "high":
		return RiskHigh
	default:
		return r
	}
}

// ComplianceSnapshot is the filing and payment health of a taxpayer.
type ComplianceSnapshot struct {
	ComplianceStatus    ComplianceStatus `json:"compliance_status"`
	ComplianceScore     int              `json:"compliance_score"`
	RiskLevel           RiskLevel        `json:"risk_level"`
	OutstandingReturns  int              `json:"outstanding_returns"`
	OutstandingPayments float64          `json:"outstanding_payments"`
	Penalties           float64          `json:"penalties"`
	ComplianceIssues    []string         `json:"compliance_issues"`
	LastAuditDate       string           `json:"last_audit_date,omitempty"`
	NextAuditDue        string           `json:"next_audit_due,omitempty"`
}

// ReportTaxpayer is the taxpayer subset embedded in a compliance report.
type ReportTaxpayer struct {
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
	TPIN         string `json:"tpin"`
	TaxCenter    string `json:"tax_center"`
}

// ComplianceReport combines taxpayer details, a compliance summary and the
// service's recommendations.
type ComplianceReport struct {
	ReportGenerated   string             `json:"report_generated"`
	TaxpayerInfo      ReportTaxpayer     `json:"taxpayer_info"`
	ComplianceSummary ComplianceSnapshot `json:"compliance_summary"`
	Recommendations   []string           `json:"recommendations"`
}
