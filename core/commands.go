package core

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

type Command struct {
	ID          string
	Name        string
	Description string
	Execute     func(a *App) tea.Cmd
	Disabled    func(a *App) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string

	rank int
}

type CommandRegistry struct {
	commands map[string]Command
	order    []string
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

// Register adds or replaces a command by ID.
func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	if _, seen := r.commands[c.ID]; !seen {
		r.order = append(r.order, c.ID)
	}
	r.commands[c.ID] = c
}

// Search returns commands matching query, best match first. Substring hits
// rank ahead of fuzzy hits; fuzzy matching uses edit distance against the
// command name so a typo like "abuot" still finds "About". An empty query
// returns every command in registration order.
func (r *CommandRegistry) Search(query string, a *App) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]CommandResult, 0, len(r.commands))
	for _, id := range r.order {
		c := r.commands[id]
		rank, ok := matchRank(q, c)
		if !ok {
			continue
		}
		disabled := false
		reason := ""
		if c.Disabled != nil {
			disabled, reason = c.Disabled(a)
		}
		results = append(results, CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Disabled:  disabled,
			Reason:    reason,
			rank:      rank,
		})
	}
	slices.SortStableFunc(results, func(x, y CommandResult) int {
		if x.Disabled != y.Disabled {
			if !x.Disabled {
				return -1
			}
			return 1
		}
		return cmp.Compare(x.rank, y.rank)
	})
	return results
}

// matchRank scores a command against a query: 0 for a substring hit, the
// edit distance for a near miss, no match beyond half the name's length.
func matchRank(q string, c Command) (int, bool) {
	if q == "" {
		return 0, true
	}
	haystack := strings.ToLower(c.Name + " " + c.Description + " " + c.ID)
	if strings.Contains(haystack, q) {
		return 0, true
	}
	name := strings.ToLower(c.Name)
	dist := levenshtein.ComputeDistance(q, name)
	limit := len(name) / 2
	if limit < 2 {
		limit = 2
	}
	if dist > limit {
		return 0, false
	}
	return dist, true
}

// Execute runs the command with the given ID. Unknown or disabled commands
// produce a status message instead of an error; a missing command at
// execute time is a user typo, not a wiring bug.
func (r *CommandRegistry) Execute(id string, a *App) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		disabled, reason := c.Disabled(a)
		if disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(a)
}
