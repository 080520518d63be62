package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testCommands() []Command {
	return []Command{
		{ID: "save", Name: "Save", Description: "Write the model"},
		{ID: "save-as", Name: "Save As", Description: "Write the model to a new path"},
		{ID: "about", Name: "About", Description: "Show application information"},
	}
}

func TestSearchEmptyQueryReturnsRegistrationOrder(t *testing.T) {
	reg := NewCommandRegistry(testCommands())
	results := reg.Search("", nil)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].CommandID != "save" || results[2].CommandID != "about" {
		t.Fatalf("empty query should keep registration order, got %+v", results)
	}
}

func TestSearchSubstringBeatsFuzzy(t *testing.T) {
	reg := NewCommandRegistry(testCommands())
	results := reg.Search("sav", nil)
	if len(results) < 2 {
		t.Fatalf("expected save commands to match, got %+v", results)
	}
	if results[0].CommandID != "save" {
		t.Fatalf("expected save first, got %s", results[0].CommandID)
	}
}

func TestSearchToleratesTypos(t *testing.T) {
	reg := NewCommandRegistry(testCommands())
	results := reg.Search("abuot", nil)
	if len(results) == 0 {
		t.Fatalf("fuzzy match should find About for 'abuot'")
	}
	if results[0].CommandID != "about" {
		t.Fatalf("expected about first, got %s", results[0].CommandID)
	}
}

func TestSearchReportsDisabledWithReason(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "save", Name: "Save", Disabled: func(a *App) (bool, string) { return true, "no save path yet" }},
	})
	results := reg.Search("save", nil)
	if len(results) != 1 || !results[0].Disabled || results[0].Reason != "no save path yet" {
		t.Fatalf("expected disabled result with reason, got %+v", results)
	}
}

func TestExecuteUnknownCommandReportsStatus(t *testing.T) {
	reg := NewCommandRegistry(nil)
	cmd := reg.Execute("nope", nil)
	if cmd == nil {
		t.Fatalf("unknown command should produce a status command")
	}
	msg, ok := cmd().(StatusMsg)
	if !ok || msg.Text == "" {
		t.Fatalf("expected status message, got %#v", cmd())
	}
}

func TestExecuteDisabledCommandIsBlocked(t *testing.T) {
	ran := false
	reg := NewCommandRegistry([]Command{{
		ID:       "save",
		Name:     "Save",
		Execute:  func(a *App) tea.Cmd { ran = true; return nil },
		Disabled: func(a *App) (bool, string) { return true, "blocked" },
	}})
	cmd := reg.Execute("save", nil)
	if ran {
		t.Fatalf("disabled command must not execute")
	}
	msg, ok := cmd().(StatusMsg)
	if !ok || msg.Text != "blocked" {
		t.Fatalf("expected blocked status, got %#v", cmd())
	}
}

func TestRegisterReplacesByID(t *testing.T) {
	reg := NewCommandRegistry(testCommands())
	reg.Register(Command{ID: "save", Name: "Save v2"})
	results := reg.Search("", nil)
	if len(results) != 3 {
		t.Fatalf("replacement should not grow the registry, got %d", len(results))
	}
	if results[0].Name != "Save v2" {
		t.Fatalf("expected replaced command, got %s", results[0].Name)
	}
}
