package business

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaxCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   TaxCategory
		wantOK bool
	}{
		{"income", TaxCategoryIncome, true},
		{"VAT", TaxCategoryVAT, true},
		{" vat ", TaxCategoryVAT, true},
		{"corporate", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseTaxCategory(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}

	assert.Equal(t, "Income Tax", TaxCategoryIncome.DisplayName())
	assert.Equal(t, "VAT", TaxCategoryVAT.DisplayName())
}

func TestComplianceStatus_IsKnown(t *testing.T) {
	for _, s := range []ComplianceStatus{StatusFullyCompliant, StatusMostlyCompliant, StatusNonCompliant, StatusUnderReview} {
		assert.True(t, s.IsKnown(), s)
	}
	assert.False(t, ComplianceStatus("Suspended").IsKnown())
	assert.False(t, ComplianceStatus("fully compliant").IsKnown())
}

func TestRiskLevel_Normalize(t *testing.T) {
	assert.Equal(t, RiskLow, RiskLevel("low").Normalize())
	assert.Equal(t, RiskMedium, RiskLevel("MEDIUM").Normalize())
	assert.Equal(t, RiskHigh, RiskLevel(" High ").Normalize())
	assert.Equal(t, RiskLevel("Severe"), RiskLevel("Severe").Normalize())
}

func TestComplianceReport_DecodesServicePayload(t *testing.T) {
	payload := `{
		"taxpayer_info": {"name": "Pollard Samba", "business_name": "Samba Tech Solutions", "tpin": "111222333", "tax_center": "Ndola"},
		"compliance_summary": {
			"compliance_status": "Mostly Compliant",
			"compliance_score": 78,
			"outstanding_returns": 1,
			"outstanding_payments": 1500.0,
			"last_audit_date": "2023-09-20",
			"next_audit_due": "2024-09-20",
			"risk_level": "Medium",
			"compliance_issues": ["Q4 2023 VAT Return overdue"],
			"penalties": 250.0
		},
		"recommendations": ["Submit 1 outstanding tax returns", "Clear outstanding payment of ZMW 1,500.00"],
		"report_generated": "2024-03-01 10:00:00"
	}`

	var report ComplianceReport
	require.NoError(t, json.Unmarshal([]byte(payload), &report))

	assert.Equal(t, "111222333", report.TaxpayerInfo.TPIN)
	assert.Equal(t, StatusMostlyCompliant, report.ComplianceSummary.ComplianceStatus)
	assert.Equal(t, RiskMedium, report.ComplianceSummary.RiskLevel)
	assert.Equal(t, 1500.0, report.ComplianceSummary.OutstandingPayments)
	assert.Equal(t, "2023-09-20", report.ComplianceSummary.LastAuditDate)
	assert.Len(t, report.Recommendations, 2)
}
