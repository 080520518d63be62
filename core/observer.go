package core

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Observer receives change notifications from subjects it is attached to.
// The notifying subject is passed to Update so an observer attached to
// several subjects can tell them apart by identity.
type Observer interface {
	Update(s *Subject) error
}

// Subject is the observable half of the pattern. Widgets and models carry a
// *Subject and broadcast state changes through Notify. Observer membership
// has set semantics: attaching twice delivers one update per Notify.
type Subject struct {
	id        string
	name      string
	observers []Observer

	notifying bool
	deferred  int
}

// NewSubject creates a subject with an empty observer set and a stable
// opaque identity. The name only appears in error messages and logs.
func NewSubject(name string) *Subject {
	return &Subject{
		id:   uuid.NewString(),
		name: name,
	}
}

// ID returns the identity handle issued at construction. The ViewManager
// keys its handler registry on this.
func (s *Subject) ID() string { return s.id }

func (s *Subject) Name() string { return s.name }

// Attach adds o to the notification set. Re-attaching an observer that is
// already present is a no-op, so callers never have to guard against
// duplicate delivery.
func (s *Subject) Attach(o Observer) {
	if o == nil {
		return
	}
	for _, existing := range s.observers {
		if existing == o {
			return
		}
	}
	s.observers = append(s.observers, o)
}

// Detach removes o if present. Detaching an observer that was never
// attached is a no-op, which keeps teardown paths unconditional.
func (s *Subject) Detach(o Observer) {
	for i, existing := range s.observers {
		if existing == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// ObserverCount returns the number of currently attached observers.
func (s *Subject) ObserverCount() int { return len(s.observers) }

// Notify calls Update(s) on every attached observer, in attachment order,
// on the calling goroutine. The observer list is snapshotted before
// iterating, so attach/detach from inside a callback cannot corrupt the
// fan-out in progress. A Notify triggered while this subject is already
// notifying is queued and runs after the current fan-out completes, so
// observers never see interleaved fan-outs from the same subject.
//
// An observer failure does not stop delivery to the remaining observers;
// all failures are joined and returned once every observer has been
// attempted.
func (s *Subject) Notify() error {
	if s.notifying {
		s.deferred++
		return nil
	}
	s.notifying = true
	defer func() { s.notifying = false }()

	var errs []error
	for {
		snapshot := make([]Observer, len(s.observers))
		copy(snapshot, s.observers)
		for _, o := range snapshot {
			if err := o.Update(s); err != nil {
				errs = append(errs, fmt.Errorf("subject %q (%s): observer update: %w", s.name, s.id, err))
			}
		}
		if s.deferred == 0 {
			break
		}
		s.deferred--
	}
	return errors.Join(errs...)
}
