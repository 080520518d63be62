package core

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SessionStore persists small pieces of UI session state between runs. The
// app records every successfully opened or saved path; nil disables
// persistence entirely.
type SessionStore interface {
	TouchRecent(path string) error
	Recent(limit int) ([]string, error)
	SetLastPath(path string) error
	LastPath() (string, error)
}

// ModelFactory builds the application's model.
type ModelFactory func() (Model, error)

// ViewManagerFactory builds the application's view manager. The factory
// receives the app so widget handlers can reach the model, and it must
// register every widget subject (and the model subject, if handlers should
// react to model changes) before returning.
type ViewManagerFactory func(a *App) (*ViewManager, error)

// Options configures NewApp. NewModel and NewViewManager are required.
type Options struct {
	Title          string
	About          AboutInfo
	NewModel       ModelFactory
	NewViewManager ViewManagerFactory
	Commands       []Command
	Store          SessionStore
}

// App is the top-level controller. It is created once at startup, owns
// exactly one model and one view manager for the application's lifetime,
// and doubles as the bubbletea model hosting the event loop.
type App struct {
	title    string
	about    AboutInfo
	model    Model
	vm       *ViewManager
	commands *CommandRegistry
	store    SessionStore
	keys     keyMap

	savePath  string
	status    string
	statusErr bool
	width     int
	height    int

	showAbout    bool
	paletteOpen  bool
	paletteQuery string
	paletteSel   int
	quitting     bool
}

// NewApp constructs the model, then the view manager, in that order, so the
// manager's build step can wire handlers against a live model. The last
// used save path is restored from the session store when one is provided.
func NewApp(opts Options) (*App, error) {
	if opts.NewModel == nil || opts.NewViewManager == nil {
		return nil, errors.New("app: model and view manager factories are required")
	}
	a := &App{
		title:  opts.Title,
		about:  opts.About,
		store:  opts.Store,
		keys:   newKeyMap(),
		status: "Ready",
	}
	a.commands = NewCommandRegistry(defaultCommands())
	for _, c := range opts.Commands {
		a.commands.Register(c)
	}

	model, err := opts.NewModel()
	if err != nil {
		return nil, fmt.Errorf("create model: %w", err)
	}
	a.model = model

	vm, err := opts.NewViewManager(a)
	if err != nil {
		return nil, fmt.Errorf("create view manager: %w", err)
	}
	a.vm = vm

	if a.store != nil {
		if last, err := a.store.LastPath(); err == nil {
			a.savePath = last
		}
	}
	return a, nil
}

func (a *App) Title() string { return a.title }

func (a *App) About() AboutInfo { return a.about }

func (a *App) Model() Model { return a.model }

func (a *App) ViewManager() *ViewManager { return a.vm }

func (a *App) Commands() *CommandRegistry { return a.commands }

func (a *App) SavePath() string { return a.savePath }

func (a *App) Status() (string, bool) { return a.status, a.statusErr }

func (a *App) SetStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) SetError(err error) {
	if err == nil {
		a.status = ""
		a.statusErr = false
		return
	}
	a.status = err.Error()
	a.statusErr = true
}

// OpenPath reads the model from path and remembers it as the save path.
func (a *App) OpenPath(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if err := a.model.ReadFrom(f); err != nil {
		return fmt.Errorf("read model from %s: %w", path, err)
	}
	a.savePath = path
	return a.rememberPath(path)
}

// Save writes the model to the last used path. It fails when no path has
// been established yet; SaveAs establishes one.
func (a *App) Save() error {
	if a.savePath == "" {
		return errors.New("no save path yet, use save-as")
	}
	return a.SaveAs(a.savePath)
}

// SaveAs writes the model to path and remembers it as the save path.
func (a *App) SaveAs(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := a.model.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write model to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	a.savePath = path
	return a.rememberPath(path)
}

func (a *App) rememberPath(path string) error {
	if a.store == nil {
		return nil
	}
	if err := a.store.TouchRecent(path); err != nil {
		return fmt.Errorf("record recent file: %w", err)
	}
	if err := a.store.SetLastPath(path); err != nil {
		return fmt.Errorf("record last path: %w", err)
	}
	return nil
}

// Close tears the observer graph down. The app is unusable afterwards.
func (a *App) Close() {
	if a.vm != nil {
		a.vm.DetachAll()
	}
}

func defaultCommands() []Command {
	return []Command{
		{
			ID:          "open-recent",
			Name:        "Open Recent",
			Description: "Reload the most recently used file",
			Execute: func(a *App) tea.Cmd {
				recent, err := a.store.Recent(1)
				if err != nil {
					return ErrorCmd(err)
				}
				if len(recent) == 0 {
					return StatusCmd("No recent files")
				}
				if err := a.OpenPath(recent[0]); err != nil {
					return ErrorCmd(err)
				}
				return StatusCmd("Opened " + recent[0])
			},
			Disabled: func(a *App) (bool, string) {
				if a.store == nil {
					return true, "no session store configured"
				}
				return false, ""
			},
		},
		{
			ID:          "save",
			Name:        "Save",
			Description: "Write the model to the last used path",
			Execute: func(a *App) tea.Cmd {
				if err := a.Save(); err != nil {
					return ErrorCmd(err)
				}
				return StatusCmd("Saved " + a.savePath)
			},
			Disabled: func(a *App) (bool, string) {
				if a.savePath == "" {
					return true, "no save path yet"
				}
				return false, ""
			},
		},
		{
			ID:          "about",
			Name:        "About",
			Description: "Show application information",
			Execute: func(a *App) tea.Cmd {
				a.showAbout = true
				return nil
			},
		},
		{
			ID:          "quit",
			Name:        "Quit",
			Description: "Exit the application",
			Execute: func(a *App) tea.Cmd {
				a.quitting = true
				return tea.Quit
			},
		},
	}
}

// ---------------------------------------------------------------------------
// bubbletea integration
// ---------------------------------------------------------------------------

type keyMap struct {
	Palette key.Binding
	Save    key.Binding
	Quit    key.Binding
	Close   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "commands")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Palette, k.Save, k.Quit}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case StatusMsg:
		a.status = msg.Text
		a.statusErr = msg.IsErr
		return a, nil
	case CommandExecuteMsg:
		return a, a.commands.Execute(msg.CommandID, a)
	case tea.KeyMsg:
		return a.updateKey(msg)
	}
	return a, nil
}

func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.paletteOpen {
		return a.updatePalette(msg)
	}
	if a.showAbout {
		if key.Matches(msg, a.keys.Close) || msg.String() == "enter" {
			a.showAbout = false
		}
		return a, nil
	}
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit
	case key.Matches(msg, a.keys.Palette):
		a.paletteOpen = true
		a.paletteQuery = ""
		a.paletteSel = 0
		return a, nil
	case key.Matches(msg, a.keys.Save):
		return a, a.commands.Execute("save", a)
	}

	// Everything else belongs to the widget layer.
	handled, err := a.vm.HandleKey(msg.String())
	if err != nil {
		a.SetError(err)
		return a, nil
	}
	if handled && a.statusErr {
		// A successful widget action supersedes a stale error.
		a.SetStatus("")
	}
	return a, nil
}

func (a *App) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	results := a.commands.Search(a.paletteQuery, a)
	switch msg.String() {
	case "esc":
		a.paletteOpen = false
		return a, nil
	case "enter":
		a.paletteOpen = false
		if a.paletteSel >= 0 && a.paletteSel < len(results) {
			return a, a.commands.Execute(results[a.paletteSel].CommandID, a)
		}
		return a, nil
	case "up":
		if a.paletteSel > 0 {
			a.paletteSel--
		}
		return a, nil
	case "down":
		if a.paletteSel < len(results)-1 {
			a.paletteSel++
		}
		return a, nil
	case "backspace":
		if a.paletteQuery != "" {
			a.paletteQuery = a.paletteQuery[:len(a.paletteQuery)-1]
			a.paletteSel = 0
		}
		return a, nil
	}
	if msg.Type == tea.KeyRunes && !msg.Alt {
		a.paletteQuery += string(msg.Runes)
		a.paletteSel = 0
	}
	return a, nil
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	title := titleStyle.Render(a.title)
	body := a.vm.View(a.contentWidth(), a.contentHeight())
	statusLine := a.renderBar(a.status, a.statusErr)
	footer := footerStyle.Render(padRight(renderHelp(a.keys.ShortHelp()), a.width))

	main := title + "\n\n" + body
	if a.height > 0 {
		contentHeight := a.height - 2
		if contentHeight < 1 {
			contentHeight = 1
		}
		if lipgloss.Height(main) < contentHeight {
			main = lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, main)
		}
	}
	base := main + "\n" + statusLine + "\n" + footer

	switch {
	case a.paletteOpen:
		return a.placeModal(base, a.paletteView())
	case a.showAbout:
		return a.placeModal(base, a.aboutView())
	}
	return base
}

func (a *App) contentWidth() int {
	if a.width == 0 {
		return 80
	}
	return a.width
}

func (a *App) contentHeight() int {
	if a.height == 0 {
		return 24
	}
	h := a.height - 4
	if h < 4 {
		h = 4
	}
	return h
}

func (a *App) renderBar(text string, isErr bool) string {
	style := statusBarStyle
	if isErr {
		style = errorBarStyle
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	return style.Render(padRight(flat, a.width))
}

func (a *App) placeModal(base, modal string) string {
	boxed := modalStyle.Render(modal)
	if a.width == 0 || a.height == 0 {
		return base + "\n\n" + boxed
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, boxed)
}

func (a *App) paletteView() string {
	results := a.commands.Search(a.paletteQuery, a)
	lines := []string{titleStyle.Render("Command") + " " + a.paletteQuery + "█"}
	for i, r := range results {
		line := r.Name
		if r.Desc != "" {
			line += "  " + dimStyle.Render(r.Desc)
		}
		if r.Disabled {
			line = dimStyle.Render(r.Name + "  (" + r.Reason + ")")
		}
		if i == a.paletteSel {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	if len(results) == 0 {
		lines = append(lines, dimStyle.Render("  no matching commands"))
	}
	return strings.Join(lines, "\n")
}

func (a *App) aboutView() string {
	return titleStyle.Render(a.about.Title()) + "\n\n" + a.about.Text()
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, boldKey(help.Key)+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func boldKey(text string) string {
	if text == "" {
		return ""
	}
	return "\x1b[1m" + text + "\x1b[22m"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
