package views

import (
	"sort"
	"strconv"

	"github.com/zra-sdk/zra-demo/internal/compliance"
	"github.com/zra-sdk/zra-demo/internal/constants"
	"github.com/zra-sdk/zra-demo/internal/types/business"
)

const (
	TitleTaxpayerVerified = "Taxpayer Verified Successfully"
	TitleCompliance       = "Compliance Status"
	TitleReport           = "Comprehensive Compliance Report"
)

// ComposeTaxpayer builds the verification view.
func ComposeTaxpayer(t business.TaxpayerRecord) View {
	fields := []Field{
		{Label: "Name", Value: t.Name},
		{Label: "Business", Value: t.BusinessName},
		{Label: "Email", Value: t.Email},
		{Label: "Phone", Value: t.Phone},
		{Label: "Tax Center", Value: t.TaxCenter},
		{Label: "Registration", Value: t.RegistrationDate},
	}
	if t.Status != "" {
		fields = append(fields, Field{Label: "Status", Value: t.Status})
	}

	return View{
		Kind:     KindTaxpayer,
		Title:    TitleTaxpayerVerified,
		Severity: compliance.SeveritySuccess,
		Sections: []Section{{Kind: SectionDetails, Fields: fields}},
	}
}

// ComposeTaxCalculation builds the calculation view. Breakdown components, when
// the service sends them, follow the headline figures in key order.
func ComposeTaxCalculation(c business.TaxCalculationResult) View {
	fields := []Field{
		{Label: "Gross Income", Value: FormatAmount(c.GrossIncome)},
		{Label: "Tax Amount", Value: FormatAmount(c.TaxAmount), Class: "amount-due"},
		{Label: "Effective Tax Rate", Value: FormatRate(c.EffectiveTaxRate), Class: "rate"},
	}

	keys := make([]string, 0, len(c.TaxBreakdown))
	for k := range c.TaxBreakdown {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, Field{Label: humanize(k), Value: FormatAmount(c.TaxBreakdown[k])})
	}

	return View{
		Kind:     KindTaxCalculation,
		Title:    c.Category.DisplayName() + " Calculation",
		Severity: compliance.SeverityInfo,
		Sections: []Section{{Kind: SectionDetails, Fields: fields}},
	}
}

// ComposeCompliance builds the compliance check view.
func ComposeCompliance(s business.ComplianceSnapshot) View {
	details := []Field{
		{Label: "Outstanding Returns", Value: strconv.Itoa(s.OutstandingReturns)},
		{Label: "Outstanding Payments", Value: FormatAmount(s.OutstandingPayments)},
		{Label: "Penalties", Value: FormatAmount(s.Penalties)},
	}
	if s.LastAuditDate != "" {
		details = append(details, Field{Label: "Last Audit", Value: s.LastAuditDate})
	}
	if s.NextAuditDue != "" {
		details = append(details, Field{Label: "Next Audit Due", Value: s.NextAuditDue})
	}

	return View{
		Kind:     KindCompliance,
		Title:    TitleCompliance,
		Severity: compliance.StatusToSeverity(s.ComplianceStatus),
		Sections: []Section{
			{
				Kind: SectionStatus,
				Fields: []Field{
					statusField("Status", s.ComplianceStatus),
					{Label: "Score", Value: FormatScore(s.ComplianceScore)},
					riskField("Risk", s.RiskLevel, " Risk"),
				},
			},
			{Kind: SectionDetails, Fields: details},
			issuesSection(s.ComplianceIssues),
		},
	}
}

// ComposeReport builds the compliance report view. Sections always appear in the
// same order: header, taxpayer info, compliance summary, recommendations.
func ComposeReport(r business.ComplianceReport) View {
	summary := r.ComplianceSummary
	issues := issuesSection(summary.ComplianceIssues)

	recommendations := make([]string, len(r.Recommendations))
	copy(recommendations, r.Recommendations)

	return View{
		Kind:     KindComplianceReport,
		Title:    TitleReport,
		Severity: compliance.StatusToSeverity(summary.ComplianceStatus),
		Sections: []Section{
			{
				Kind:     SectionHeader,
				Heading:  TitleReport,
				Subtitle: "Generated: " + r.ReportGenerated,
			},
			{
				Kind:    SectionTaxpayerInfo,
				Heading: "Taxpayer Information",
				Fields: []Field{
					{Label: "Name", Value: r.TaxpayerInfo.Name},
					{Label: "Business", Value: r.TaxpayerInfo.BusinessName},
					{Label: "TPIN", Value: r.TaxpayerInfo.TPIN},
					{Label: "Tax Center", Value: r.TaxpayerInfo.TaxCenter},
				},
			},
			{
				Kind:    SectionComplianceSummary,
				Heading: "Compliance Summary",
				Fields: []Field{
					statusField("Status", summary.ComplianceStatus),
					{Label: "Score", Value: FormatScore(summary.ComplianceScore)},
					riskField("Risk Level", summary.RiskLevel, ""),
				},
				Items:       issues.Items,
				Affirmation: issues.Affirmation,
			},
			{
				Kind:    SectionRecommendations,
				Heading: "Recommendations",
				Items:   recommendations,
			},
		},
	}
}

// issuesSection lists issues in order, or affirms there are none.
func issuesSection(issues []string) Section {
	section := Section{Kind: SectionIssues, Heading: "Compliance Issues"}
	if len(issues) == 0 {
		section.Affirmation = constants.MsgNoIssues
		return section
	}
	section.Items = make([]string, len(issues))
	copy(section.Items, issues)
	return section
}

func statusField(label string, status business.ComplianceStatus) Field {
	return Field{Label: label, Value: string(status), Class: string(compliance.StatusToBadge(status))}
}

func riskField(label string, level business.RiskLevel, suffix string) Field {
	return Field{Label: label, Value: string(level) + suffix, Class: string(compliance.RiskToTier(level))}
}
