package console

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/zra-sdk/zra-demo/internal/constants"
	"github.com/zra-sdk/zra-demo/internal/workflow"
)

// WorkflowHandler exposes one workflow engine over HTTP.
type WorkflowHandler struct {
	engine *workflow.Engine

	// submitMu keeps an input fill and its submit together so concurrent requests
	// cannot submit each other's values.
	submitMu sync.Mutex
}

// NewWorkflowHandler creates a handler around engine.
func NewWorkflowHandler(engine *workflow.Engine) *WorkflowHandler {
	return &WorkflowHandler{engine: engine}
}

// SubmitWorkflow godoc
// @Summary      Submit a workflow
// @Description  Stores the form values, validates them and dispatches the workflow. Waits for the workflow to settle unless async=true.
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Param        workflow  path      string                 true   "Workflow" Enums(verify, calculate, compliance, report)
// @Param        async     query     bool                   false  "Return immediately with the pending state"
// @Param        request   body      SubmitWorkflowRequest  true   "Form values"
// @Success      200  {object}  WorkflowResponse
// @Success      202  {object}  WorkflowResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Failure      504  {object}  ErrorResponse
// @Router       /workflows/{workflow} [post]
func (h *WorkflowHandler) SubmitWorkflow(c *gin.Context) {
	id, ok := workflow.ParseWorkflowID(c.Param("workflow"))
	if !ok {
		sendError(c, http.StatusNotFound, "Workflow not found", errors.New(c.Param("workflow")))
		return
	}

	var req SubmitWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var settled <-chan workflow.State
	h.submitMu.Lock()
	err := h.engine.SetInputs(inputsFor(id, req))
	if err == nil {
		settled, err = h.engine.Dispatch(detach(c.Request.Context()), id)
	}
	h.submitMu.Unlock()
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to submit workflow", err)
		return
	}

	if async, _ := strconv.ParseBool(c.Query("async")); async {
		sendSuccess(c, http.StatusAccepted, h.workflowResponse(id))
		return
	}

	// Only this dispatch is awaited; the request ending abandons the wait, not the
	// dispatch.
	select {
	case state := <-settled:
		sendSuccess(c, http.StatusOK, WorkflowResponse{Object: "workflow", Workflow: id, State: state})
	case <-c.Request.Context().Done():
		sendError(c, http.StatusGatewayTimeout, "Workflow did not settle before the request ended", c.Request.Context().Err())
	}
}

// GetWorkflow godoc
// @Summary      Get a workflow state
// @Tags         workflows
// @Produce      json
// @Param        workflow  path  string  true  "Workflow" Enums(verify, calculate, compliance, report)
// @Success      200  {object}  WorkflowResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /workflows/{workflow} [get]
func (h *WorkflowHandler) GetWorkflow(c *gin.Context) {
	id, ok := workflow.ParseWorkflowID(c.Param("workflow"))
	if !ok {
		sendError(c, http.StatusNotFound, "Workflow not found", errors.New(c.Param("workflow")))
		return
	}
	sendSuccess(c, http.StatusOK, h.workflowResponse(id))
}

// ListWorkflows godoc
// @Summary      List workflow states
// @Tags         workflows
// @Produce      json
// @Success      200  {object}  ListResponse
// @Router       /workflows [get]
func (h *WorkflowHandler) ListWorkflows(c *gin.Context) {
	items := make([]WorkflowResponse, 0, len(workflow.All()))
	for _, id := range workflow.All() {
		items = append(items, h.workflowResponse(id))
	}
	sendList(c, items)
}

// ListQuickActions godoc
// @Summary      List sample taxpayers
// @Tags         quick-actions
// @Produce      json
// @Success      200  {object}  ListResponse
// @Router       /quick-actions [get]
func (h *WorkflowHandler) ListQuickActions(c *gin.Context) {
	sendList(c, workflow.QuickActions)
}

// RunQuickAction godoc
// @Summary      Run a quick action
// @Description  Fills the verify, compliance and report inputs with the TPIN and schedules a verify.
// @Tags         quick-actions
// @Accept       json
// @Produce      json
// @Param        request  body      QuickActionRequest  true  "Sample TPIN"
// @Success      202  {object}  QuickActionResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /quick-actions [post]
func (h *WorkflowHandler) RunQuickAction(c *gin.Context) {
	var req QuickActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	// the scheduled verify outlives this request
	h.submitMu.Lock()
	h.engine.FillAll(detach(c.Request.Context()), req.TPIN)
	inputs := h.engine.Inputs()
	h.submitMu.Unlock()

	sendSuccess(c, http.StatusAccepted, QuickActionResponse{Object: "quick_action", Inputs: inputs})
}

// Health godoc
// @Summary      Health check
// @Description  Checks if the server is running
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func Health(stage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:  "ok",
			Service: constants.ServiceName,
			Stage:   stage,
		})
	}
}

func (h *WorkflowHandler) workflowResponse(id workflow.WorkflowID) WorkflowResponse {
	return WorkflowResponse{
		Object:   "workflow",
		Workflow: id,
		State:    h.engine.State(id),
	}
}

func inputsFor(id workflow.WorkflowID, req SubmitWorkflowRequest) map[workflow.Field]string {
	switch id {
	case workflow.Verify:
		return map[workflow.Field]string{workflow.FieldVerifyTPIN: req.TPIN}
	case workflow.Compliance:
		return map[workflow.Field]string{workflow.FieldComplianceTPIN: req.TPIN}
	case workflow.Report:
		return map[workflow.Field]string{workflow.FieldReportTPIN: req.TPIN}
	case workflow.Calculate:
		values := map[workflow.Field]string{workflow.FieldIncome: string(req.Income)}
		if req.TaxType != "" {
			values[workflow.FieldTaxType] = req.TaxType
		}
		return values
	default:
		return nil
	}
}
