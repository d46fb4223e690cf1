package workflow

//go:generate mockgen -destination=../mocks/mock_surface.go -package=mocks github.com/zra-sdk/zra-demo/internal/workflow Surface
//go:generate mockgen -destination=../mocks/mock_result_recorder.go -package=mocks github.com/zra-sdk/zra-demo/internal/workflow ResultRecorder

// Surface displays workflow states. Show is called with one state at a time per
// engine.
type Surface interface {
	Show(id WorkflowID, state State)
}

// ResultRecorder counts settled dispatches by outcome.
type ResultRecorder interface {
	RecordWorkflowResult(workflow, outcome string)
}

type noopRecorder struct{}

func (noopRecorder) RecordWorkflowResult(string, string) {}
