package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/appframe/appframe/core"
)

type notifyCounter struct{ n int }

func (o *notifyCounter) Update(*core.Subject) error { o.n++; return nil }

func TestCounterModelMutationsNotify(t *testing.T) {
	m := newCounterModel()
	obs := &notifyCounter{}
	m.Subject().Attach(obs)

	if err := m.Add(2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := m.SetRunning(true); err != nil {
		t.Fatalf("set running: %v", err)
	}
	if obs.n != 2 {
		t.Fatalf("expected one notification per mutation, got %d", obs.n)
	}
	if m.Count() != 2 || !m.Running() {
		t.Fatalf("unexpected state: count=%d running=%v", m.Count(), m.Running())
	}
}

func TestCounterModelStreamRoundTrip(t *testing.T) {
	m := newCounterModel()
	if err := m.Add(7); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := m.SetRunning(true); err != nil {
		t.Fatalf("set running: %v", err)
	}

	var buf bytes.Buffer
	if err := m.WriteTo(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}

	fresh := newCounterModel()
	obs := &notifyCounter{}
	fresh.Subject().Attach(obs)
	if err := fresh.ReadFrom(&buf); err != nil {
		t.Fatalf("read: %v", err)
	}
	if obs.n != 1 {
		t.Fatalf("bulk load must notify once, got %d", obs.n)
	}
	if fresh.Count() != 7 || !fresh.Running() {
		t.Fatalf("round trip lost state: count=%d running=%v", fresh.Count(), fresh.Running())
	}
}

func TestCounterModelRejectsGarbage(t *testing.T) {
	m := newCounterModel()
	if err := m.ReadFrom(strings.NewReader("not json")); err == nil {
		t.Fatalf("expected decode error")
	}
}
