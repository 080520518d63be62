package widgets

import "github.com/appframe/appframe/core"

// Stepper emits +1/-1 step events. It holds no total itself: observers read
// the last step off the widget and apply it wherever the running value
// lives, keeping the widget decoupled from the model.
type Stepper struct {
	subject  *core.Subject
	lastStep int
}

func NewStepper(name string) *Stepper {
	return &Stepper{subject: core.NewSubject(name)}
}

func (s *Stepper) Ref() *core.Subject { return s.subject }

// LastStep returns the most recent step, +1 or -1, or 0 before any input.
func (s *Stepper) LastStep() int { return s.lastStep }

// Step records delta, then notifies.
func (s *Stepper) Step(delta int) error {
	s.lastStep = delta
	return s.subject.Notify()
}

func (s *Stepper) HandleKey(key string) (bool, error) {
	switch key {
	case "+", "=", "right", "k":
		return true, s.Step(1)
	case "-", "left", "j":
		return true, s.Step(-1)
	}
	return false, nil
}

func (s *Stepper) View(width int, focused bool) string {
	body := labelStyle.Render(s.subject.Name()) + "\n" + valueStyle.Render("[-]  [+]")
	return frame(focused).Width(width).Render(body)
}
