// Package compliance maps compliance statuses and risk levels onto the
// presentation categories used by every view. The mappings are total: a value the
// service invents later falls into the informational category instead of failing.
package compliance

import "github.com/zra-sdk/zra-demo/internal/types/business"

// Severity is the presentation category of a whole result block.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Badge is the presentation category of a status badge.
type Badge string

const (
	BadgeSuccess Badge = "badge-success"
	BadgeWarning Badge = "badge-warning"
	BadgeError   Badge = "badge-error"
	BadgeInfo    Badge = "badge-info"
)

// RiskTier is the presentation tier of a risk level.
type RiskTier string

const (
	TierLow     RiskTier = "risk-low"
	TierMedium  RiskTier = "risk-medium"
	TierHigh    RiskTier = "risk-high"
	TierUnknown RiskTier = "risk-unknown"
)

// StatusToSeverity classifies a compliance status. Unknown statuses are info.
func StatusToSeverity(status business.ComplianceStatus) Severity {
	switch status {
	case business.StatusFullyCompliant:
		return SeveritySuccess
	case business.StatusMostlyCompliant:
		return SeverityWarning
	case business.StatusNonCompliant:
		return SeverityError
	case business.StatusUnderReview:
		return SeverityInfo
	default:
		return SeverityInfo
	}
}

// StatusToBadge classifies a compliance status for its badge. Unknown statuses
// get the info badge.
func StatusToBadge(status business.ComplianceStatus) Badge {
	switch status {
	case business.StatusFullyCompliant:
		return BadgeSuccess
	case business.StatusMostlyCompliant:
		return BadgeWarning
	case business.StatusNonCompliant:
		return BadgeError
	case business.StatusUnderReview:
		return BadgeInfo
	default:
		return BadgeInfo
	}
}

// RiskToTier classifies a risk level, ignoring case.
func RiskToTier(level business.RiskLevel) RiskTier {
	switch level.Normalize() {
	case business.RiskLow:
		return TierLow
	case business.RiskMedium:
		return TierMedium
	case business.RiskHigh:
		return TierHigh
	default:
		return TierUnknown
	}
}
