package core

import (
	"errors"
	"fmt"
)

// ErrUnregisteredSubject is returned by ViewManager.Update when a subject
// notifies the manager but has no handler in the registry. That is always a
// wiring bug (widget attached but never registered, or an entry removed too
// early); surfacing it beats a UI that silently stops updating.
var ErrUnregisteredSubject = errors.New("subject has no registered handler")

// Handler is a zero-argument callback associated with exactly one subject
// in a ViewManager registry. Handlers close over whatever they need,
// typically reading the current value off the subject or the app's model.
type Handler func() error

// ViewManager mediates between an application's widgets and its model. It
// is the sole observer of every widget and of the model, so widgets never
// reference each other: a widget notifies, and the manager invokes the
// handler registered for that specific subject.
type ViewManager struct {
	app      *App
	handlers map[string]Handler
	subjects map[string]*Subject
	order    []string // registration order, keeps DetachAll deterministic

	view       func(width, height int) string
	keyHandler KeyHandler
}

// NewViewManager builds a manager and runs buildWidgets before returning.
// buildWidgets must create every child widget and perform its Register call
// there, so that no notification can arrive before a handler exists for it.
func NewViewManager(app *App, buildWidgets func(vm *ViewManager) error) (*ViewManager, error) {
	vm := &ViewManager{
		app:      app,
		handlers: map[string]Handler{},
		subjects: map[string]*Subject{},
	}
	if buildWidgets != nil {
		if err := buildWidgets(vm); err != nil {
			return nil, fmt.Errorf("create widgets: %w", err)
		}
	}
	return vm, nil
}

// Register attaches the manager to subject and installs handler in a single
// step, so a subject can never be attached-but-unregistered. Registering a
// subject that already has a handler replaces it; last registration wins.
func (vm *ViewManager) Register(subject *Subject, handler Handler) {
	if subject == nil || handler == nil {
		return
	}
	subject.Attach(vm)
	id := subject.ID()
	if _, seen := vm.handlers[id]; !seen {
		vm.order = append(vm.order, id)
	}
	vm.handlers[id] = handler
	vm.subjects[id] = subject
}

// Deregister detaches the manager from subject and removes its registry
// entry, keeping the observer list and the registry consistent. Unknown
// subjects are a no-op.
func (vm *ViewManager) Deregister(subject *Subject) {
	if subject == nil {
		return
	}
	id := subject.ID()
	if _, ok := vm.handlers[id]; !ok {
		return
	}
	subject.Detach(vm)
	delete(vm.handlers, id)
	delete(vm.subjects, id)
	for i, sid := range vm.order {
		if sid == id {
			vm.order = append(vm.order[:i], vm.order[i+1:]...)
			break
		}
	}
}

// Registered reports whether subject currently has a handler.
func (vm *ViewManager) Registered(subject *Subject) bool {
	if subject == nil {
		return false
	}
	_, ok := vm.handlers[subject.ID()]
	return ok
}

// Update implements Observer. It looks the notifying subject up in the
// registry and invokes its handler.
func (vm *ViewManager) Update(subject *Subject) error {
	if subject == nil {
		return fmt.Errorf("nil subject: %w", ErrUnregisteredSubject)
	}
	handler, ok := vm.handlers[subject.ID()]
	if !ok {
		return fmt.Errorf("subject %q (%s): %w", subject.Name(), subject.ID(), ErrUnregisteredSubject)
	}
	if err := handler(); err != nil {
		return fmt.Errorf("subject %q: handler: %w", subject.Name(), err)
	}
	return nil
}

// DetachAll detaches the manager from every registered subject and clears
// the registry. Called on app teardown.
func (vm *ViewManager) DetachAll() {
	for _, id := range vm.order {
		vm.subjects[id].Detach(vm)
	}
	vm.handlers = map[string]Handler{}
	vm.subjects = map[string]*Subject{}
	vm.order = nil
}

// App returns the owning controller, so handlers can reach app state.
func (vm *ViewManager) App() *App { return vm.app }

// Model returns the owning app's model, or nil when the manager is
// constructed standalone.
func (vm *ViewManager) Model() Model {
	if vm.app == nil {
		return nil
	}
	return vm.app.Model()
}

// SetView installs the render callback invoked by the app's View.
func (vm *ViewManager) SetView(view func(width, height int) string) {
	vm.view = view
}

// View renders the managed widget area.
func (vm *ViewManager) View(width, height int) string {
	if vm.view == nil {
		return ""
	}
	return vm.view(width, height)
}

// SetKeyHandler installs the callback that routes key events to widgets.
func (vm *ViewManager) SetKeyHandler(h KeyHandler) {
	vm.keyHandler = h
}

// HandleKey forwards a key event to the installed handler. It reports
// whether the key was consumed; a handler or notify failure is returned so
// the app can surface it.
func (vm *ViewManager) HandleKey(key string) (bool, error) {
	if vm.keyHandler == nil {
		return false, nil
	}
	return vm.keyHandler(key)
}

// KeyHandler consumes a normalized key name ("tab", "space", "+", ...) and
// reports whether it handled the key.
type KeyHandler func(key string) (bool, error)
