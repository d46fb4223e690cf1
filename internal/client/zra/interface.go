package zra

import (
	"context"

	"github.com/zra-sdk/zra-demo/internal/types/business"
)

//go:generate mockgen -source=interface.go -destination=../../mocks/mock_zra_client.go -package=mocks

// ClientInterface is the request dispatcher used by the workflow engine and the console.
type ClientInterface interface {
	Verify(ctx context.Context, tpin string) (*business.TaxpayerRecord, error)
	CalculateTax(ctx context.Context, income float64, category business.TaxCategory) (*business.TaxCalculationResult, error)
	CheckCompliance(ctx context.Context, tpin string) (*business.ComplianceSnapshot, error)
	GenerateReport(ctx context.Context, tpin string) (*business.ComplianceReport, error)
}

var _ ClientInterface = (*Client)(nil)
