package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/appframe/appframe/core"
)

// counterModel is the demo's business logic: a counter plus a running flag.
// Every mutation ends with exactly one Notify.
type counterModel struct {
	core.BaseModel
	count   int
	running bool
}

func newCounterModel() *counterModel {
	return &counterModel{BaseModel: core.NewBaseModel("counter-model")}
}

func (m *counterModel) Count() int    { return m.count }
func (m *counterModel) Running() bool { return m.running }

func (m *counterModel) Add(delta int) error {
	m.count += delta
	return m.Notify()
}

func (m *counterModel) SetRunning(running bool) error {
	m.running = running
	return m.Notify()
}

type counterState struct {
	Count   int  `json:"count"`
	Running bool `json:"running"`
}

// ReadFrom replaces the full model state from JSON, then notifies once.
func (m *counterModel) ReadFrom(r io.Reader) error {
	var state counterState
	if err := json.NewDecoder(r).Decode(&state); err != nil {
		return fmt.Errorf("decode counter state: %w", err)
	}
	m.count = state.Count
	m.running = state.Running
	return m.Notify()
}

// WriteTo serializes the current state as JSON. No notification.
func (m *counterModel) WriteTo(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(counterState{Count: m.count, Running: m.running}); err != nil {
		return fmt.Errorf("encode counter state: %w", err)
	}
	return nil
}
