// Package board is an in-memory Surface that keeps the latest state of every
// workflow and the full sequence of states it was shown.
package board

import (
	"sync"

	"github.com/zra-sdk/zra-demo/internal/workflow"
)

// Entry is one Show call.
type Entry struct {
	Workflow workflow.WorkflowID `json:"workflow"`
	State    workflow.State      `json:"state"`
}

// Board is safe for concurrent use.
type Board struct {
	mu      sync.RWMutex
	current map[workflow.WorkflowID]workflow.State
	history []Entry
	limit   int
}

// New creates a board with every workflow idle. limit bounds the retained
// history; zero keeps everything.
func New(limit int) *Board {
	b := &Board{
		current: make(map[workflow.WorkflowID]workflow.State),
		limit:   limit,
	}
	for _, id := range workflow.All() {
		b.current[id] = workflow.IdleState()
	}
	return b
}

// Show implements workflow.Surface.
func (b *Board) Show(id workflow.WorkflowID, state workflow.State) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current[id] = state
	b.history = append(b.history, Entry{Workflow: id, State: state})
	if b.limit > 0 && len(b.history) > b.limit {
		b.history = append([]Entry(nil), b.history[len(b.history)-b.limit:]...)
	}
}

// Get returns the latest state shown for id.
func (b *Board) Get(id workflow.WorkflowID) workflow.State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current[id]
}

// Snapshot returns the latest state of every workflow.
func (b *Board) Snapshot() map[workflow.WorkflowID]workflow.State {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[workflow.WorkflowID]workflow.State, len(b.current))
	for id, s := range b.current {
		out[id] = s
	}
	return out
}

// History returns the shown states, oldest first, optionally filtered to one
// workflow.
func (b *Board) History(id workflow.WorkflowID) []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []Entry
	for _, e := range b.history {
		if id == "" || e.Workflow == id {
			out = append(out, e)
		}
	}
	return out
}

// Phases returns the phase sequence shown for id.
func (b *Board) Phases(id workflow.WorkflowID) []workflow.Phase {
	entries := b.History(id)
	out := make([]workflow.Phase, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.State.Phase)
	}
	return out
}

var _ workflow.Surface = (*Board)(nil)
