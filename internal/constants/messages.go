package constants

// Pending messages shown while a workflow request is in flight
const (
	PendingVerify     = "Verifying taxpayer information..."
	PendingCalculate  = "Calculating tax amount..."
	PendingCompliance = "Checking compliance status..."
	PendingReport     = "Generating comprehensive compliance report..."
)

// User-facing validation and failure messages
const (
	MsgInvalidIdentifier = "Please enter a valid 9-digit TPIN"
	MsgInvalidAmount     = "Please enter a valid income amount"
	MsgInvalidTaxType    = "Please choose a tax type of income or vat"
	MsgNetworkErrorFmt   = "Network error: %s"
	MsgNoIssues          = "No compliance issues found"
)
