// Package ui holds the presentation pieces shared by the desktop and terminal
// front-ends: the shortcut table, the rule editor and the status panel text.
// The ebiten HUD itself is only built with the ebiten tag.
package ui

import (
	"fmt"

	"github.com/emjomi/life/internal/core"
)

// Shortcut documents one key binding.
type Shortcut struct {
	Keys   string
	Action string
}

// Shortcuts lists the bindings understood by both front-ends.
var Shortcuts = []Shortcut{
	{"Space", "Toggle running"},
	{"Right", "Evolve one step (paused)"},
	{"Ctrl+R", "Randomize grid"},
	{"Ctrl+E", "Clear grid"},
	{"+ / -", "Faster / slower"},
	{"] / [", "Grow / shrink grid"},
	{"E", "Edit rule"},
	{"Click", "Toggle cell (paused)"},
	{"?", "Show shortcuts"},
	{"Q / Esc", "Quit"},
}

// HelpLines formats Shortcuts as aligned text lines.
func HelpLines() []string {
	width := 0
	for _, s := range Shortcuts {
		if len(s.Keys) > width {
			width = len(s.Keys)
		}
	}
	lines := make([]string, 0, len(Shortcuts)+1)
	lines = append(lines, "Shortcuts")
	for _, s := range Shortcuts {
		lines = append(lines, fmt.Sprintf("  %-*s  %s", width, s.Keys, s.Action))
	}
	return lines
}

// PanelLines formats a parameter snapshot as the status panel text.
func PanelLines(s core.ParameterSnapshot) []string {
	var lines []string
	for i, g := range s.Groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			value := p.Value
			if p.Type == core.ParamTypeBool {
				if value == "true" {
					value = "yes"
				} else {
					value = "no"
				}
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, value))
		}
	}
	return lines
}

// StatusLine condenses a snapshot into one line for narrow views.
func StatusLine(s core.ParameterSnapshot) string {
	get := func(key string) string {
		p, _ := s.Lookup(key)
		return p.Value
	}
	state := "paused"
	if get("running") == "true" {
		state = "running"
	}
	return fmt.Sprintf("%s  gen %s  pop %s  size %s  %s tps  %s",
		get("rule"), get("generation"), get("population"), get("size"), get("tps"), state)
}
