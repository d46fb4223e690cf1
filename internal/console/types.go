package console

import (
	"encoding/json"
	"strconv"

	"github.com/zra-sdk/zra-demo/internal/workflow"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Stage   string `json:"stage,omitempty"`
}

// SubmitWorkflowRequest carries the form values for one workflow. Only the fields
// the workflow reads are used: tpin for verify, compliance and report; income and
// tax_type for calculate.
type SubmitWorkflowRequest struct {
	TPIN    string    `json:"tpin,omitempty" example:"123456789"`
	Income  FormValue `json:"income,omitempty" swaggertype:"string" example:"25000"`
	TaxType string    `json:"tax_type,omitempty" example:"income"`
}

// QuickActionRequest fills every identifier input and triggers a verify.
type QuickActionRequest struct {
	TPIN string `json:"tpin" binding:"required" example:"111222333"`
}

// WorkflowResponse is the state of one workflow.
type WorkflowResponse struct {
	Object   string              `json:"object"`
	Workflow workflow.WorkflowID `json:"workflow"`
	State    workflow.State      `json:"state"`
}

// QuickActionResponse echoes the filled inputs.
type QuickActionResponse struct {
	Object string          `json:"object"`
	Inputs workflow.Inputs `json:"inputs"`
}

// ListResponse is the standard list envelope
type ListResponse struct {
	Object string      `json:"object"`
	Data   interface{} `json:"data"`
}

// FormValue is raw form text. It also accepts a JSON number, which is kept in its
// literal form, and null, which is empty.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*v = FormValue(n.String())
	return nil
}
