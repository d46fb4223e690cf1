package workflow

import (
	"github.com/zra-sdk/zra-demo/internal/client/zra"
	"github.com/zra-sdk/zra-demo/internal/views"
)

// Phase is the lifecycle position of a workflow.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhasePending Phase = "pending"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// State is what a surface shows for one workflow. It is replaced wholesale on
// every transition.
type State struct {
	Phase   Phase           `json:"phase"`
	Message string          `json:"message,omitempty"`
	View    *views.View     `json:"view,omitempty"`
	Kind    zra.FailureKind `json:"kind,omitempty"`
	// Seq is the dispatch this state belongs to, counted per workflow.
	Seq uint64 `json:"seq"`
}

func IdleState() State {
	return State{Phase: PhaseIdle}
}

func PendingState(id WorkflowID, seq uint64) State {
	return State{Phase: PhasePending, Message: id.PendingMessage(), Seq: seq}
}

func SuccessState(view views.View, seq uint64) State {
	return State{Phase: PhaseSuccess, View: &view, Seq: seq}
}

func ErrorState(kind zra.FailureKind, message string, seq uint64) State {
	return State{Phase: PhaseError, Kind: kind, Message: message, Seq: seq}
}

// Terminal reports whether the state is success or error.
func (s State) Terminal() bool {
	return s.Phase == PhaseSuccess || s.Phase == PhaseError
}
