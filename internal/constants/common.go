package constants

// Common string constants used throughout the codebase
const (
	ServiceName = "zra-demo"

	// Log levels
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warning"
	ErrorLevel = "error"

	// Environments
	ProdEnvironment  = "prod"
	DevEnvironment   = "dev"
	LocalEnvironment = "local"
	TestEnvironment  = "test"

	// Currency shown next to amounts
	ZMWCurrency = "ZMW"

	CorrelationIDHeader = "X-Correlation-ID"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case ProdEnvironment, DevEnvironment, LocalEnvironment, TestEnvironment:
		return true
	default:
		return false
	}
}
