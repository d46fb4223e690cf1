// Package zra is the client for the tax authority integration service. Each
// operation issues exactly one JSON POST and never retries.
package zra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	httpclient "github.com/zra-sdk/zra-demo/internal/client/http"
	"github.com/zra-sdk/zra-demo/internal/constants"
	"github.com/zra-sdk/zra-demo/internal/middleware"
	"github.com/zra-sdk/zra-demo/internal/types/business"
	"github.com/zra-sdk/zra-demo/internal/validation"
	"go.uber.org/zap"
)

const (
	VerifyPath           = "/api/verify"
	CalculateTaxPath     = "/api/calculate-tax"
	CompliancePath       = "/api/compliance"
	ComplianceReportPath = "/api/compliance-report"
)

// Client talks to the integration service over HTTP.
type Client struct {
	httpClient *httpclient.HTTPClient
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, options ...httpclient.ClientOption) *Client {
	opts := append([]httpclient.ClientOption{
		httpclient.WithBaseURL(baseURL),
		httpclient.WithDefaultHeader("Content-Type", "application/json"),
		httpclient.WithDefaultHeader("Accept", "application/json"),
	}, options...)

	return &Client{httpClient: httpclient.NewHTTPClient(opts...)}
}

// BaseURL returns the service address the client posts to.
func (c *Client) BaseURL() string {
	return c.httpClient.GetBaseURL()
}

// Verify looks up the taxpayer registered under tpin.
func (c *Client) Verify(ctx context.Context, tpin string) (*business.TaxpayerRecord, error) {
	if !validation.ValidateIdentifier(tpin) {
		return nil, &ValidationError{Field: "tpin", Message: constants.MsgInvalidIdentifier}
	}

	var resp VerifyResponse
	if err := c.post(ctx, "verify", VerifyPath, TPINRequest{TPIN: tpin}, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, missingPayload("verify", "data")
	}
	return resp.Data, nil
}

// CalculateTax asks the service to compute tax on income for the given category.
// The returned result always carries the requested category.
func (c *Client) CalculateTax(ctx context.Context, income float64, category business.TaxCategory) (*business.TaxCalculationResult, error) {
	if math.IsNaN(income) || math.IsInf(income, 0) || income <= 0 {
		return nil, &ValidationError{Field: "income", Message: constants.MsgInvalidAmount}
	}
	if !validation.ValidateTaxType(string(category)) {
		return nil, &ValidationError{Field: "tax_type", Message: constants.MsgInvalidTaxType}
	}

	var resp CalculateTaxResponse
	req := CalculateTaxRequest{Income: income, TaxType: category}
	if err := c.post(ctx, "calculate-tax", CalculateTaxPath, req, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, missingPayload("calculate-tax", "data")
	}
	resp.Data.Category = category
	return resp.Data, nil
}

// CheckCompliance fetches the compliance snapshot for tpin.
func (c *Client) CheckCompliance(ctx context.Context, tpin string) (*business.ComplianceSnapshot, error) {
	if !validation.ValidateIdentifier(tpin) {
		return nil, &ValidationError{Field: "tpin", Message: constants.MsgInvalidIdentifier}
	}

	var resp ComplianceResponse
	if err := c.post(ctx, "compliance", CompliancePath, TPINRequest{TPIN: tpin}, &resp); err != nil {
		return nil, err
	}
	if resp.ComplianceData == nil {
		return nil, missingPayload("compliance", "compliance_data")
	}
	return resp.ComplianceData, nil
}

// GenerateReport requests the full compliance report for tpin.
func (c *Client) GenerateReport(ctx context.Context, tpin string) (*business.ComplianceReport, error) {
	if !validation.ValidateIdentifier(tpin) {
		return nil, &ValidationError{Field: "tpin", Message: constants.MsgInvalidIdentifier}
	}

	var resp ComplianceReportResponse
	if err := c.post(ctx, "compliance-report", ComplianceReportPath, TPINRequest{TPIN: tpin}, &resp); err != nil {
		return nil, err
	}
	if resp.ComplianceReport == nil {
		return nil, missingPayload("compliance-report", "compliance_report")
	}
	return resp.ComplianceReport, nil
}

// post sends body and decodes the envelope into target. Error statuses are still
// decoded, since the service reports failures as envelopes with HTTP 400.
func (c *Client) post(ctx context.Context, op, path string, body interface{}, target enveloped) error {
	correlationID := middleware.CorrelationIDFromContext(ctx)
	if correlationID == "" {
		correlationID = middleware.NewCorrelationID()
	}
	log := middleware.LogWithCorrelationID(ctx).With(
		zap.String("operation", op),
		zap.String("correlation_id", correlationID),
	)

	resp, err := c.httpClient.Post(ctx, path, body, httpclient.WithHeader(constants.CorrelationIDHeader, correlationID))

	var httpErr *httpclient.HTTPError
	if err != nil && !errors.As(err, &httpErr) {
		log.Warn("Request did not reach the service", zap.Error(err))
		return &TransportError{Op: op, Err: err}
	}
	if resp == nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("failed to read response body: %w", readErr)}
	}

	if decodeErr := json.Unmarshal(data, target); decodeErr != nil {
		log.Warn("Undecodable response", zap.Int("status", resp.StatusCode), zap.Error(decodeErr))
		if httpErr != nil {
			return &TransportError{Op: op, Err: httpErr}
		}
		return &TransportError{Op: op, Err: fmt.Errorf("malformed response: %w", decodeErr)}
	}

	env := target.envelope()
	succeeded := env.Success != nil && *env.Success
	if !succeeded || httpErr != nil {
		if env.Error != "" {
			log.Info("Service reported failure", zap.Int("status", resp.StatusCode), zap.String("error", env.Error))
			return &ServiceError{Op: op, Message: env.Error, StatusCode: resp.StatusCode}
		}
		if httpErr != nil {
			return &TransportError{Op: op, Err: httpErr}
		}
		if env.Success == nil {
			return &TransportError{Op: op, Err: errors.New("malformed response: missing success flag")}
		}
		return &TransportError{Op: op, Err: errors.New("malformed response: failure without error message")}
	}

	log.Debug("Service request succeeded", zap.Int("status", resp.StatusCode))
	return nil
}

func missingPayload(op, key string) error {
	return &TransportError{Op: op, Err: fmt.Errorf("malformed response: missing %s", key)}
}
