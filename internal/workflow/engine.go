package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/zra-sdk/zra-demo/internal/client/zra"
	"github.com/zra-sdk/zra-demo/internal/config"
	"github.com/zra-sdk/zra-demo/internal/constants"
	"github.com/zra-sdk/zra-demo/internal/logger"
	"github.com/zra-sdk/zra-demo/internal/middleware"
	"github.com/zra-sdk/zra-demo/internal/types/business"
	"github.com/zra-sdk/zra-demo/internal/validation"
	"github.com/zra-sdk/zra-demo/internal/views"
	"go.uber.org/zap"
)

// Engine owns one state slot per workflow and the form inputs that feed them.
type Engine struct {
	dispatcher       zra.ClientInterface
	surface          Surface
	recorder         ResultRecorder
	sequencing       string
	quickActionDelay time.Duration

	mu     sync.Mutex
	states map[WorkflowID]State
	issued map[WorkflowID]uint64
	inputs Inputs

	// renderMu serializes state stores together with the surface call so a
	// surface never observes states out of store order.
	renderMu sync.Mutex
	pending  *inflight
}

// Option configures an Engine.
type Option func(*Engine)

// WithSequencing selects how out-of-order responses are handled.
func WithSequencing(policy string) Option {
	return func(e *Engine) {
		e.sequencing = policy
	}
}

// WithQuickActionDelay sets the pause between a quick-action fill and its verify.
func WithQuickActionDelay(d time.Duration) Option {
	return func(e *Engine) {
		e.quickActionDelay = d
	}
}

// WithResultRecorder counts every settled dispatch.
func WithResultRecorder(r ResultRecorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.recorder = r
		}
	}
}

// NewEngine creates an engine with every workflow idle.
func NewEngine(dispatcher zra.ClientInterface, surface Surface, opts ...Option) *Engine {
	e := &Engine{
		dispatcher:       dispatcher,
		surface:          surface,
		recorder:         noopRecorder{},
		sequencing:       config.SequencingLastResolved,
		quickActionDelay: config.DefaultQuickActionDelay,
		states:           make(map[WorkflowID]State),
		issued:           make(map[WorkflowID]uint64),
		inputs:           Inputs{TaxType: string(business.TaxCategoryIncome)},
		pending:          newInflight(),
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, id := range All() {
		e.states[id] = IdleState()
	}
	return e
}

// NewEngineFromConfig applies the workflow section of cfg.
func NewEngineFromConfig(cfg *config.Config, dispatcher zra.ClientInterface, surface Surface, opts ...Option) *Engine {
	base := []Option{
		WithSequencing(cfg.Workflow.Sequencing),
		WithQuickActionDelay(cfg.Workflow.QuickActionDelay),
	}
	return NewEngine(dispatcher, surface, append(base, opts...)...)
}

// SetInput stores a raw form value.
func (e *Engine) SetInput(field Field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.inputs.set(field, value) {
		return fmt.Errorf("unknown input field %q", field)
	}
	return nil
}

// SetInputs stores several raw form values at once. Nothing is stored when any
// field is unknown.
func (e *Engine) SetInputs(values map[Field]string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.inputs
	for field, value := range values {
		if !next.set(field, value) {
			return fmt.Errorf("unknown input field %q", field)
		}
	}
	e.inputs = next
	return nil
}

// Inputs returns a copy of the current form values.
func (e *Engine) Inputs() Inputs {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inputs
}

// State returns the current state of a workflow.
func (e *Engine) State(id WorkflowID) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.states[id]
}

// States returns a copy of every workflow's state.
func (e *Engine) States() map[WorkflowID]State {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(map[WorkflowID]State, len(e.states))
	for id, s := range e.states {
		out[id] = s
	}
	return out
}

// Wait blocks until every outstanding dispatch and scheduled quick action has
// settled. It is safe to call while other goroutines submit.
func (e *Engine) Wait() {
	_ = e.pending.wait(context.Background())
}

// WaitContext is Wait bounded by ctx. It returns ctx's error when work is still
// outstanding as ctx ends.
func (e *Engine) WaitContext(ctx context.Context) error {
	return e.pending.wait(ctx)
}

// Submit validates the workflow's current inputs and, when they are valid, renders
// Pending and dispatches the request in the background. Validation failures render
// an error state and send nothing. The returned error is non-nil only for an
// unknown workflow.
func (e *Engine) Submit(ctx context.Context, id WorkflowID) error {
	_, err := e.Dispatch(ctx, id)
	return err
}

// Dispatch is Submit returning a channel that receives the state this dispatch
// settled in, once it has been rendered. Only this dispatch is tracked: other
// workflows, and later dispatches of the same one, do not delay it. Under the
// latest-issued policy the received state may have been discarded as stale.
func (e *Engine) Dispatch(ctx context.Context, id WorkflowID) (<-chan State, error) {
	if _, ok := ParseWorkflowID(string(id)); !ok {
		return nil, fmt.Errorf("unknown workflow %q", id)
	}
	settled := make(chan State, 1)

	correlationID := middleware.CorrelationIDFromContext(ctx)
	if correlationID == "" {
		correlationID = middleware.NewCorrelationID()
		ctx = middleware.WithCorrelationID(ctx, correlationID)
	}

	e.mu.Lock()
	e.issued[id]++
	seq := e.issued[id]
	inputs := e.inputs
	e.mu.Unlock()

	log := middleware.LogWithCorrelationID(ctx).With(
		zap.String("workflow", string(id)),
		zap.Uint64("seq", seq),
	)

	call, vErr := prepare(id, inputs)
	if vErr != nil {
		log.Info("Workflow input rejected", zap.String("field", vErr.Field))
		e.recorder.RecordWorkflowResult(string(id), string(zra.FailureValidation))
		state := ErrorState(zra.FailureValidation, vErr.Message, seq)
		e.render(id, state)
		settled <- state
		return settled, nil
	}

	e.render(id, PendingState(id, seq))
	log.Debug("Workflow dispatched")

	e.pending.add()
	go func() {
		defer e.pending.done()

		state := e.run(ctx, log, id, seq, call)
		e.render(id, state)
		settled <- state
	}()

	return settled, nil
}

// run performs one dispatch and returns the terminal state it settles in. A panic
// in the dispatcher or a composer settles the workflow as a transport failure
// instead of taking the process down.
func (e *Engine) run(ctx context.Context, log *zap.Logger, id WorkflowID, seq uint64, call dispatchFunc) (state State) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Workflow dispatch panicked", zap.Any("panic", r), zap.Stack("stack"))
			err := &zra.TransportError{Op: string(id), Err: fmt.Errorf("unexpected failure: %v", r)}
			e.recorder.RecordWorkflowResult(string(id), string(zra.FailureTransport))
			state = ErrorState(zra.FailureTransport, zra.UserMessage(err), seq)
		}
	}()

	view, err := call(ctx, e.dispatcher)
	if err != nil {
		kind := zra.Classify(err)
		log.Info("Workflow failed", zap.String("kind", string(kind)), zap.Error(err))
		e.recorder.RecordWorkflowResult(string(id), string(kind))
		return ErrorState(kind, zra.UserMessage(err), seq)
	}

	log.Debug("Workflow succeeded")
	e.recorder.RecordWorkflowResult(string(id), "success")
	return SuccessState(view, seq)
}

// render stores state and shows it. Under the latest-issued policy a state from
// an older dispatch than the latest one issued is dropped.
func (e *Engine) render(id WorkflowID, state State) {
	e.renderMu.Lock()
	defer e.renderMu.Unlock()

	e.mu.Lock()
	latest := e.issued[id]
	if e.sequencing == config.SequencingLatestIssued && state.Seq < latest {
		e.mu.Unlock()
		logger.Info("Discarding stale workflow response",
			zap.String("workflow", string(id)),
			zap.String("phase", string(state.Phase)),
			zap.Uint64("seq", state.Seq),
			zap.Uint64("latest", latest),
		)
		return
	}
	e.states[id] = state
	e.mu.Unlock()

	if e.surface != nil {
		e.surface.Show(id, state)
	}
}

type dispatchFunc func(ctx context.Context, d zra.ClientInterface) (views.View, error)

// prepare validates the inputs a workflow reads and binds them into a dispatch.
func prepare(id WorkflowID, in Inputs) (dispatchFunc, *zra.ValidationError) {
	switch id {
	case Verify:
		tpin, err := identifier(in.VerifyTPIN)
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context, d zra.ClientInterface) (views.View, error) {
			record, err := d.Verify(ctx, tpin)
			if err != nil {
				return views.View{}, err
			}
			if record == nil {
				return views.View{}, emptyPayload(id)
			}
			return views.ComposeTaxpayer(*record), nil
		}, nil

	case Calculate:
		income, err := validation.ParseAmount(in.Income)
		if err != nil {
			return nil, &zra.ValidationError{Field: string(FieldIncome), Message: constants.MsgInvalidAmount}
		}
		category := business.TaxCategoryIncome
		if strings.TrimSpace(in.TaxType) != "" {
			parsed, ok := business.ParseTaxCategory(in.TaxType)
			if !ok {
				return nil, &zra.ValidationError{Field: string(FieldTaxType), Message: constants.MsgInvalidTaxType}
			}
			category = parsed
		}
		return func(ctx context.Context, d zra.ClientInterface) (views.View, error) {
			result, err := d.CalculateTax(ctx, income, category)
			if err != nil {
				return views.View{}, err
			}
			if result == nil {
				return views.View{}, emptyPayload(id)
			}
			result.Category = category
			return views.ComposeTaxCalculation(*result), nil
		}, nil

	case Compliance:
		tpin, err := identifier(in.ComplianceTPIN)
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context, d zra.ClientInterface) (views.View, error) {
			snapshot, err := d.CheckCompliance(ctx, tpin)
			if err != nil {
				return views.View{}, err
			}
			if snapshot == nil {
				return views.View{}, emptyPayload(id)
			}
			return views.ComposeCompliance(*snapshot), nil
		}, nil

	case Report:
		tpin, err := identifier(in.ReportTPIN)
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context, d zra.ClientInterface) (views.View, error) {
			report, err := d.GenerateReport(ctx, tpin)
			if err != nil {
				return views.View{}, err
			}
			if report == nil {
				return views.View{}, emptyPayload(id)
			}
			return views.ComposeReport(*report), nil
		}, nil

	default:
		return nil, &zra.ValidationError{Field: "workflow", Message: fmt.Sprintf("unknown workflow %q", id)}
	}
}

func emptyPayload(id WorkflowID) error {
	return &zra.TransportError{Op: string(id), Err: errors.New("empty response")}
}

func identifier(value string) (string, *zra.ValidationError) {
	if !validation.ValidateIdentifier(value) {
		return "", &zra.ValidationError{Field: "tpin", Message: constants.MsgInvalidIdentifier}
	}
	return value, nil
}
