package zra

import "github.com/zra-sdk/zra-demo/internal/types/business"

// TPINRequest is the body of every identifier-keyed request.
type TPINRequest struct {
	TPIN string `json:"tpin"`
}

// CalculateTaxRequest is the body of a tax calculation request.
type CalculateTaxRequest struct {
	Income  float64              `json:"income"`
	TaxType business.TaxCategory `json:"tax_type"`
}

// Envelope carries the fields common to every service response. Success is a
// pointer so that a body without the flag can be told apart from success=false.
type Envelope struct {
	Success *bool  `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (e *Envelope) envelope() *Envelope { return e }

type enveloped interface {
	envelope() *Envelope
}

// VerifyResponse is the response of POST /api/verify.
type VerifyResponse struct {
	Envelope
	Data *business.TaxpayerRecord `json:"data,omitempty"`
}

// CalculateTaxResponse is the response of POST /api/calculate-tax.
type CalculateTaxResponse struct {
	Envelope
	Data *business.TaxCalculationResult `json:"data,omitempty"`
}

// ComplianceResponse is the response of POST /api/compliance.
type ComplianceResponse struct {
	Envelope
	ComplianceData *business.ComplianceSnapshot `json:"compliance_data,omitempty"`
}

// ComplianceReportResponse is the response of POST /api/compliance-report.
type ComplianceReportResponse struct {
	Envelope
	ComplianceReport *business.ComplianceReport `json:"compliance_report,omitempty"`
}
