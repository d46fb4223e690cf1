// Package workflow runs the four independent request workflows and renders the
// lifecycle of each one to a Surface.
package workflow

import "github.com/zra-sdk/zra-demo/internal/constants"

// WorkflowID names one of the independent workflows.
type WorkflowID string

const (
	Verify     WorkflowID = "verify"
	Calculate  WorkflowID = "calculate"
	Compliance WorkflowID = "compliance"
	Report     WorkflowID = "report"
)

// All lists the workflows in display order.
func All() []WorkflowID {
	return []WorkflowID{Verify, Calculate, Compliance, Report}
}

// ParseWorkflowID maps a name to a workflow.
func ParseWorkflowID(name string) (WorkflowID, bool) {
	switch id := WorkflowID(name); id {
	case Verify, Calculate, Compliance, Report:
		return id, true
	default:
		return "", false
	}
}

// PendingMessage is shown while the workflow's request is in flight.
func (id WorkflowID) PendingMessage() string {
	switch id {
	case Verify:
		return constants.PendingVerify
	case Calculate:
		return constants.PendingCalculate
	case Compliance:
		return constants.PendingCompliance
	case Report:
		return constants.PendingReport
	default:
		return ""
	}
}

// Field names a form input.
type Field string

const (
	FieldVerifyTPIN     Field = "verify-tpin"
	FieldComplianceTPIN Field = "compliance-tpin"
	FieldReportTPIN     Field = "report-tpin"
	FieldIncome         Field = "income"
	FieldTaxType        Field = "tax-type"
)

// Inputs holds the current form values. Values are raw operator text and are
// validated only when a workflow is submitted.
type Inputs struct {
	VerifyTPIN     string `json:"verify_tpin"`
	ComplianceTPIN string `json:"compliance_tpin"`
	ReportTPIN     string `json:"report_tpin"`
	Income         string `json:"income"`
	TaxType        string `json:"tax_type"`
}

func (in *Inputs) set(field Field, value string) bool {
	switch field {
	case FieldVerifyTPIN:
		in.VerifyTPIN = value
	case FieldComplianceTPIN:
		in.ComplianceTPIN = value
	case FieldReportTPIN:
		in.ReportTPIN = value
	case FieldIncome:
		in.Income = value
	case FieldTaxType:
		in.TaxType = value
	default:
		return false
	}
	return true
}
