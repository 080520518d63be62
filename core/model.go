package core

import "io"

// Model owns the application's data and business logic. A model is a
// subject: every completed mutation must end with exactly one Notify so
// observers never see a stale view, and no mutation may notify before the
// state change is fully applied.
//
// ReadFrom replaces the model's entire state from the stream and then
// notifies exactly once; it must never notify per field. WriteTo serializes
// the current state and does not notify.
type Model interface {
	Subject() *Subject
	ReadFrom(r io.Reader) error
	WriteTo(w io.Writer) error
}

// BaseModel carries the subject half of a model. Concrete models embed it
// and implement ReadFrom/WriteTo plus their domain operations.
type BaseModel struct {
	subject *Subject
}

func NewBaseModel(name string) BaseModel {
	return BaseModel{subject: NewSubject(name)}
}

func (m *BaseModel) Subject() *Subject { return m.subject }

// Notify broadcasts to the model's observers. Call it once, at the end of
// each completed mutation.
func (m *BaseModel) Notify() error { return m.subject.Notify() }
