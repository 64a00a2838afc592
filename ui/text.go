package ui

import "fmt"

// ControlsLegend lists the window key bindings.
const ControlsLegend = "[Space] pause/resume  [S] save  [H] toggle HUD  [Esc] quit"

// StatusText describes the loop state.
func StatusText(looping bool) string {
	if looping {
		return "Running"
	}
	return "PAUSED"
}

// LoopButtonLabel is the label of the pause/resume button.
func LoopButtonLabel(looping bool) string {
	if looping {
		return "Pause"
	}
	return "Resume"
}

// FrameLine formats the frame counter and rate.
func FrameLine(data HUDData) string {
	return fmt.Sprintf("Frame: %d | FPS: %d/%d", data.Frame, data.FPS, data.TargetFPS)
}
