package core

import tea "github.com/charmbracelet/bubbletea"

// StatusMsg replaces the status bar contents.
type StatusMsg struct {
	Text  string
	IsErr bool
}

// CommandExecuteMsg requests execution of a registered command by ID.
type CommandExecuteMsg struct {
	CommandID string
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

// ErrorCmd surfaces err on the status bar; a nil err clears it.
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
