// Package widgets provides a small set of observable controls. Every widget
// carries a core.Subject and notifies its observers after each completed
// state change; widgets never reference each other or the model — the view
// manager's handlers do the cross-widget work.
package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appframe/appframe/core"
)

// Widget is an observable control the view layer can compose.
type Widget interface {
	// Ref returns the widget's subject, the handle passed to
	// ViewManager.Register.
	Ref() *core.Subject
	// HandleKey consumes a normalized key name and reports whether the
	// widget handled it. Pure display widgets return false.
	HandleKey(key string) (bool, error)
	// View renders the widget at the given inner width.
	View(width int, focused bool) string
}

var (
	frameStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")).Padding(0, 1)
	labelStyle        = lipgloss.NewStyle().Bold(true)
	valueStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func frame(focused bool) lipgloss.Style {
	if focused {
		return focusedFrameStyle
	}
	return frameStyle
}

// Strip renders widgets side by side, highlighting the focused one.
func Strip(widgetList []Widget, width, focusIdx int) string {
	if len(widgetList) == 0 {
		return ""
	}
	each := width/len(widgetList) - 4
	if each < 12 {
		each = 12
	}
	views := make([]string, 0, len(widgetList))
	for i, w := range widgetList {
		views = append(views, w.View(each, i == focusIdx))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

func padLine(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
