package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeStore struct {
	recent []string
	last   string
}

func (f *fakeStore) TouchRecent(path string) error {
	for i, p := range f.recent {
		if p == path {
			f.recent = append(f.recent[:i], f.recent[i+1:]...)
			break
		}
	}
	f.recent = append([]string{path}, f.recent...)
	return nil
}

func (f *fakeStore) Recent(limit int) ([]string, error) {
	if limit < 1 || limit > len(f.recent) {
		limit = len(f.recent)
	}
	return f.recent[:limit], nil
}

func (f *fakeStore) SetLastPath(path string) error { f.last = path; return nil }

func (f *fakeStore) LastPath() (string, error) { return f.last, nil }

// newTestApp wires a counter model to a view manager whose model handler
// mirrors the count into summary, the way a readout widget would.
func newTestApp(t *testing.T, store SessionStore) (*App, *testCounterModel, *string) {
	t.Helper()
	summary := new(string)
	app, err := NewApp(Options{
		Title:    "test app",
		About:    AboutInfo{Name: "test app", Version: "0.0.1"},
		NewModel: func() (Model, error) { return newTestCounterModel(), nil },
		NewViewManager: func(a *App) (*ViewManager, error) {
			return NewViewManager(a, func(vm *ViewManager) error {
				m := a.Model().(*testCounterModel)
				vm.Register(m.Subject(), func() error {
					*summary = fmt.Sprintf("count %d", m.Count())
					return nil
				})
				return nil
			})
		},
		Store: store,
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app, app.Model().(*testCounterModel), summary
}

func TestNewAppRequiresFactories(t *testing.T) {
	if _, err := NewApp(Options{}); err == nil {
		t.Fatalf("expected error without factories")
	}
}

func TestModelNotificationReachesRegisteredHandler(t *testing.T) {
	app, m, summary := newTestApp(t, nil)
	defer app.Close()

	if err := m.Increment(); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if *summary != "count 1" {
		t.Fatalf("model handler did not run: %q", *summary)
	}
}

func TestOpenSaveRoundTrip(t *testing.T) {
	store := &fakeStore{}
	app, m, _ := newTestApp(t, store)
	defer app.Close()

	for i := 0; i < 5; i++ {
		if err := m.Increment(); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "counter.json")
	if err := app.SaveAs(path); err != nil {
		t.Fatalf("save as: %v", err)
	}
	if app.SavePath() != path {
		t.Fatalf("save path not remembered: %q", app.SavePath())
	}
	if len(store.recent) != 1 || store.recent[0] != path || store.last != path {
		t.Fatalf("session store not updated: %+v", store)
	}

	app2, m2, _ := newTestApp(t, store)
	defer app2.Close()
	if app2.SavePath() != path {
		t.Fatalf("last path not restored from store: %q", app2.SavePath())
	}
	if err := app2.OpenPath(path); err != nil {
		t.Fatalf("open: %v", err)
	}
	if m2.Count() != 5 {
		t.Fatalf("round trip lost state: count %d, want 5", m2.Count())
	}
}

func TestSaveWithoutPathFails(t *testing.T) {
	app, _, _ := newTestApp(t, nil)
	defer app.Close()
	if err := app.Save(); err == nil {
		t.Fatalf("save without a path must fail")
	}
}

func TestAboutTextCarriesAllFields(t *testing.T) {
	info := AboutInfo{
		Name:      "demo",
		Version:   "1.2.3",
		Copyright: "2026",
		Author:    "Jane Doe",
		License:   "MIT License",
		Source:    "https://example.com/demo",
	}
	text := info.Text()
	for _, want := range []string{"demo", "1.2.3", "2026", "Jane Doe", "MIT License", "https://example.com/demo"} {
		if !strings.Contains(text, want) {
			t.Fatalf("about text missing %q: %s", want, text)
		}
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestQuitKeyQuits(t *testing.T) {
	app, _, _ := newTestApp(t, nil)
	defer app.Close()
	_, cmd := app.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if !app.quitting {
		t.Fatalf("quit key did not mark the app as quitting")
	}
}

func TestPaletteSearchAndExecute(t *testing.T) {
	app, _, _ := newTestApp(t, nil)
	defer app.Close()

	app.Update(keyRunes(":"))
	if !app.paletteOpen {
		t.Fatalf("palette did not open")
	}
	for _, r := range "quit" {
		app.Update(keyRunes(string(r)))
	}
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected the quit command to execute")
	}
	if app.paletteOpen {
		t.Fatalf("palette should close on execute")
	}
	if !app.quitting {
		t.Fatalf("palette-executed quit did not take effect")
	}
}

func TestWidgetKeyErrorSurfacesInStatus(t *testing.T) {
	boom := errors.New("handler exploded")
	app, err := NewApp(Options{
		NewModel: func() (Model, error) { return newTestCounterModel(), nil },
		NewViewManager: func(a *App) (*ViewManager, error) {
			return NewViewManager(a, func(vm *ViewManager) error {
				vm.SetKeyHandler(func(key string) (bool, error) { return false, boom })
				return nil
			})
		},
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer app.Close()

	app.Update(keyRunes("x"))
	status, isErr := app.Status()
	if !isErr || !strings.Contains(status, "handler exploded") {
		t.Fatalf("widget error not surfaced: %q (err=%v)", status, isErr)
	}
}

func TestUnregisteredWidgetNotifySurfacesLoudly(t *testing.T) {
	// A widget attached during buildWidgets but never registered is a
	// wiring bug: the key path must report it, not swallow it.
	app, err := NewApp(Options{
		NewModel: func() (Model, error) { return newTestCounterModel(), nil },
		NewViewManager: func(a *App) (*ViewManager, error) {
			return NewViewManager(a, func(vm *ViewManager) error {
				orphan := NewSubject("orphan-widget")
				orphan.Attach(vm)
				vm.SetKeyHandler(func(key string) (bool, error) {
					return true, orphan.Notify()
				})
				return nil
			})
		},
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer app.Close()

	app.Update(keyRunes("x"))
	status, isErr := app.Status()
	if !isErr || !strings.Contains(status, "orphan-widget") {
		t.Fatalf("unregistered notification not surfaced: %q", status)
	}
}
