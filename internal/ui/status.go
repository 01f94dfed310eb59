package ui

import (
	"fmt"
	"strings"

	"gridcaster/internal/core"
)

// StatusLines renders a parameter snapshot as one header line per group
// followed by indented "label: value" lines. The frame rate leads.
func StatusLines(snap core.ParameterSnapshot, fps float64) []string {
	lines := []string{fmt.Sprintf("FPS: %.0f", fps)}
	for _, group := range snap.Groups {
		lines = append(lines, group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

// StatusLine packs the snapshot into a single line for narrow displays.
func StatusLine(snap core.ParameterSnapshot, fps float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS %.0f", fps)
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			fmt.Fprintf(&b, " | %s %s", p.Label, p.Value)
		}
	}
	return b.String()
}
