package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appframe/appframe/core"
	"github.com/appframe/appframe/internal/config"
	"github.com/appframe/appframe/internal/database"
	"github.com/appframe/appframe/internal/session"
)

const counterFile = "counter.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Data.DBPath), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Data.DBPath, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Data.DBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	store := session.NewStore(db, cfg.Data.RecentLimit)

	app, err := core.NewApp(core.Options{
		Title: "AppFrame Demo",
		About: core.AboutInfo{
			Name:      "AppFrame Demo",
			Version:   "0.1.0",
			Copyright: "2026",
			Author:    "The appframe authors",
			License:   "MIT License",
			Source:    "https://github.com/appframe/appframe",
		},
		NewModel:       func() (core.Model, error) { return newCounterModel(), nil },
		NewViewManager: newDemoViewManager,
		Store:          store,
		Commands: []core.Command{
			{
				ID:          "save-as-counter",
				Name:        "Save As counter.json",
				Description: "Write the counter to ./" + counterFile,
				Execute: func(a *core.App) tea.Cmd {
					if err := a.SaveAs(counterFile); err != nil {
						return core.ErrorCmd(err)
					}
					return core.StatusCmd("Saved " + counterFile)
				},
			},
			{
				ID:          "open-counter",
				Name:        "Open counter.json",
				Description: "Load the counter from ./" + counterFile,
				Execute: func(a *core.App) tea.Cmd {
					if err := a.OpenPath(counterFile); err != nil {
						return core.ErrorCmd(err)
					}
					return core.StatusCmd("Opened " + counterFile)
				},
			},
		},
	})
	if err != nil {
		log.Fatalf("app: %v", err)
	}
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
