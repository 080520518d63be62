package main

import (
	"fmt"

	"github.com/appframe/appframe/core"
	"github.com/appframe/appframe/widgets"
)

// newDemoViewManager creates the demo's widgets and wires every subject to
// its handler before the manager is handed back to the app, so the first
// notification always finds a handler.
func newDemoViewManager(a *core.App) (*core.ViewManager, error) {
	return core.NewViewManager(a, func(vm *core.ViewManager) error {
		model, ok := a.Model().(*counterModel)
		if !ok {
			return fmt.Errorf("unexpected model type %T", a.Model())
		}

		toggle := widgets.NewToggle("Run State", "Start", "Stop")
		stepper := widgets.NewStepper("Counter")
		readout := widgets.NewReadout("Model")

		all := []widgets.Widget{toggle, stepper, readout}
		focus := 0

		vm.Register(toggle.Ref(), func() error {
			return model.SetRunning(toggle.Started())
		})
		vm.Register(stepper.Ref(), func() error {
			return model.Add(stepper.LastStep())
		})
		vm.Register(model.Subject(), func() error {
			readout.Set(modelSummary(model))
			return nil
		})
		readout.Set(modelSummary(model))

		vm.SetKeyHandler(func(key string) (bool, error) {
			if key == "tab" {
				focus = (focus + 1) % len(all)
				return true, nil
			}
			return all[focus].HandleKey(key)
		})
		vm.SetView(func(width, height int) string {
			return widgets.Strip(all, width, focus)
		})
		return nil
	})
}

func modelSummary(m *counterModel) string {
	state := "stopped"
	if m.Running() {
		state = "running"
	}
	return fmt.Sprintf("count %d, %s", m.Count(), state)
}
