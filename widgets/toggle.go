package widgets

import "github.com/appframe/appframe/core"

// Toggle is a two-state button. Pressing it flips the state and notifies
// observers; the button label shows the action the next press performs, so
// a stopped toggle reads "Start" and a started one reads "Stop".
type Toggle struct {
	subject *core.Subject
	offText string
	onText  string
	started bool
}

func NewToggle(name, offText, onText string) *Toggle {
	return &Toggle{
		subject: core.NewSubject(name),
		offText: offText,
		onText:  onText,
	}
}

func (t *Toggle) Ref() *core.Subject { return t.subject }

func (t *Toggle) Started() bool { return t.started }

// Press flips the state, then notifies.
func (t *Toggle) Press() error {
	t.started = !t.started
	return t.subject.Notify()
}

func (t *Toggle) HandleKey(key string) (bool, error) {
	switch key {
	case " ", "space", "enter":
		return true, t.Press()
	}
	return false, nil
}

func (t *Toggle) View(width int, focused bool) string {
	label := t.offText
	if t.started {
		label = t.onText
	}
	body := labelStyle.Render(t.subject.Name()) + "\n" + valueStyle.Render("[ "+label+" ]")
	return frame(focused).Width(width).Render(body)
}
