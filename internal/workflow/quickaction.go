package workflow

import (
	"context"
	"time"

	"github.com/zra-sdk/zra-demo/internal/logger"
	"go.uber.org/zap"
)

// QuickAction is a sample taxpayer offered for one-click testing.
type QuickAction struct {
	TPIN  string `json:"tpin"`
	Label string `json:"label"`
}

// QuickActions lists the sample taxpayers known to the demo service.
var QuickActions = []QuickAction{
	{TPIN: "123456789", Label: "John Banda"},
	{TPIN: "111222333", Label: "Pollard Samba"},
	{TPIN: "444555666", Label: "Ebenezer Kaluba"},
	{TPIN: "777888999", Label: "Saviour Silwamba"},
	{TPIN: "222333444", Label: "Pethias Kasempa"},
	{TPIN: "555666777", Label: "Lawrence Thor"},
}

// FillAll writes tpin into the verify, compliance and report inputs and, after the
// configured delay, submits verify once. The value is not validated here; verify
// validates it on submit. Wait covers the scheduled submission.
func (e *Engine) FillAll(ctx context.Context, tpin string) {
	e.mu.Lock()
	e.inputs.VerifyTPIN = tpin
	e.inputs.ComplianceTPIN = tpin
	e.inputs.ReportTPIN = tpin
	delay := e.quickActionDelay
	e.mu.Unlock()

	logger.Debug("Quick action filled inputs",
		zap.String("tpin", tpin),
		zap.Duration("delay", delay),
	)

	e.pending.add()
	time.AfterFunc(delay, func() {
		defer e.pending.done()
		_ = e.Submit(ctx, Verify)
	})
}
