package widgets

import "github.com/appframe/appframe/core"

// Readout is a pure display widget. The view manager pushes text into it
// from its model handler; setting the text does not notify, since a readout
// has nothing to tell anyone.
type Readout struct {
	subject *core.Subject
	text    string
}

func NewReadout(name string) *Readout {
	return &Readout{subject: core.NewSubject(name)}
}

func (r *Readout) Ref() *core.Subject { return r.subject }

func (r *Readout) Set(text string) { r.text = text }

func (r *Readout) Text() string { return r.text }

func (r *Readout) HandleKey(key string) (bool, error) { return false, nil }

func (r *Readout) View(width int, focused bool) string {
	body := labelStyle.Render(r.subject.Name()) + "\n" + valueStyle.Render(padLine(r.text, width-4))
	return frame(focused).Width(width).Render(body)
}
