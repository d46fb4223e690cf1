package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockClientForTest creates a new mock zra ClientInterface for testing
func NewMockClientForTest(t *testing.T) *MockClientInterface {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockClientInterface(ctrl)
}

// NewMockSurfaceForTest creates a new mock Surface for testing
func NewMockSurfaceForTest(t *testing.T) *MockSurface {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSurface(ctrl)
}

// NewMockResultRecorderForTest creates a new mock ResultRecorder for testing
func NewMockResultRecorderForTest(t *testing.T) *MockResultRecorder {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockResultRecorder(ctrl)
}
