package ui

import "fmt"

// StatusLine formats the HUD text for a generation.
func StatusLine(generation uint64, population int, paused bool) string {
	line := fmt.Sprintf("gen %d  pop %d", generation, population)
	if paused {
		line += "  [paused]"
	}
	return line
}
