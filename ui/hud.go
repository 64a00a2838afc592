package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/kanvas/telemetry"
)

// HUDData holds everything the HUD shows for one frame.
type HUDData struct {
	Title     string
	Frame     int
	FPS       int32
	TargetFPS int
	Looping   bool
	Width     int // framebuffer size
	Height    int
}

// HUDActions are the button clicks seen while drawing the HUD.
type HUDActions struct {
	ToggleLoop bool
	Save       bool
}

// HUD renders the heads-up display with loop and save buttons.
type HUD struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewHUD creates a HUD anchored at the top-left corner.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		x:        10,
		y:        10,
		width:    220,
	}
}

// Draw renders the HUD and returns the button clicks.
func (h *HUD) Draw(data HUDData) HUDActions {
	r := h.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	panelHeight := r.Theme.TitleFontSize + lineHeight*3 + 28 + padding*3
	r.DrawPanel(h.x, h.y, h.width, panelHeight)

	x := h.x + padding
	y := h.y + padding

	rl.DrawText(data.Title, x, y, r.Theme.TitleFontSize, r.Theme.TitleColor)
	y += r.Theme.TitleFontSize + 4

	rl.DrawText(FrameLine(data), x, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("Size: %dx%d", data.Width, data.Height), x, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += lineHeight

	statusColor := r.Theme.StatusRunning
	if !data.Looping {
		statusColor = r.Theme.StatusPaused
	}
	rl.DrawText(StatusText(data.Looping), x, y, r.Theme.FontSize, statusColor)
	y += lineHeight + 4

	var actions HUDActions
	buttonWidth := (h.width - padding*3) / 2
	if r.Button(x, y, buttonWidth, 24, LoopButtonLabel(data.Looping)) {
		actions.ToggleLoop = true
	}
	if r.Button(x+buttonWidth+padding, y, buttonWidth, 24, "Save") {
		actions.Save = true
	}
	return actions
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	rl.DrawText(ControlsLegend, 10, screenHeight-20, 12, rl.Gray)
}

// PerfPanel renders the per-phase frame timing breakdown.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y, width int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders frame work against the frame budget, then each phase's share of it.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, budget time.Duration) {
	r := p.renderer
	padding := r.Theme.Padding

	lines := int32(len(telemetry.Phases) + 2)
	r.DrawPanel(p.x, p.y, p.width, lines*(r.Theme.LineHeight+2)+padding*2)

	x := p.x + padding
	y := p.y + padding

	y = r.DrawSectionHeader(x, y, "Frame Time")
	y = r.DrawBudgetBar(x, y, "budget",
		float32(stats.AvgFrameDuration), float32(budget), p.width-padding*2)

	for _, phase := range telemetry.Phases {
		avg := stats.PhaseAvg[phase]
		y = r.DrawLabelValue(x, y, phase,
			fmt.Sprintf("%6s %5.1f%%", avg.Round(time.Microsecond), stats.PhasePct[phase]))
	}
}
