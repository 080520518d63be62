package core

import "strings"

// AboutInfo describes the application for its about dialog. The controller
// passes it through opaquely; only the dialog rendering interprets the
// fields.
type AboutInfo struct {
	Name      string
	Version   string
	Copyright string
	Author    string
	License   string
	Source    string
}

// Text renders the dialog body, one fact per line.
func (a AboutInfo) Text() string {
	lines := []string{
		a.Name,
		"version " + a.Version,
		"Copyright (c) " + a.Copyright + " by " + a.Author,
		"Licensed under the " + a.License,
		"Source: " + a.Source,
	}
	return strings.Join(lines, "\n")
}

// Title renders the dialog title.
func (a AboutInfo) Title() string {
	return "About " + a.Name
}
