package business

import "strings"

// TaxCategory selects how the remote service computes tax.
type TaxCategory string

const (
	TaxCategoryIncome TaxCategory = "income"
	TaxCategoryVAT    TaxCategory = "vat"
)

// ParseTaxCategory accepts the wire values case-insensitively.
func ParseTaxCategory(value string) (TaxCategory, bool) {
	switch TaxCategory(strings.ToLower(strings.TrimSpace(value))) {
	case TaxCategoryIncome:
		return TaxCategoryIncome, true
	case TaxCategoryVAT:
		return TaxCategoryVAT, true
	default:
		return "", false
	}
}

// DisplayName is the heading used for a calculation of this category.
func (c TaxCategory) DisplayName() string {
	if c == TaxCategoryIncome {
		return "Income Tax"
	}
	return "VAT"
}

// TaxpayerRecord is the taxpayer snapshot returned by a verification.
type TaxpayerRecord struct {
	TPIN             string `json:"tpin,omitempty"`
	Name             string `json:"name"`
	BusinessName     string `json:"business_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	TaxCenter        string `json:"tax_center"`
	RegistrationDate string `json:"registration_date"`
	Status           string `json:"status,omitempty"`
}

// TaxCalculationResult is the service's computation for an income figure.
type TaxCalculationResult struct {
	GrossIncome      float64            `json:"gross_income"`
	TaxAmount        float64            `json:"tax_amount"`
	EffectiveTaxRate float64            `json:"effective_tax_rate"`
	Category         TaxCategory        `json:"tax_type,omitempty"`
	TaxBreakdown     map[string]float64 `json:"tax_breakdown,omitempty"`
}
