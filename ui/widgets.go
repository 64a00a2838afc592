package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawBudgetBar draws how much of a budget is used; the fill turns amber past 75%
// and red past 100%.
func (r *Renderer) DrawBudgetBar(x, y int32, label string, used, budget float32, width int32) int32 {
	ratio := BudgetRatio(used, budget)

	barX := x + r.Theme.LabelWidth
	barWidth := width - r.Theme.LabelWidth - 50

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawRectangle(barX, y+2, barWidth, r.Theme.BarHeight, r.Theme.BarBg)

	fill := ratio
	if fill > 1 {
		fill = 1
	}
	barColor := r.Theme.BarFill
	switch {
	case ratio > 1:
		barColor = r.Theme.BarFillHigh
	case ratio > 0.75:
		barColor = r.Theme.BarFillMedium
	}
	rl.DrawRectangle(barX, y+2, int32(float32(barWidth)*fill), r.Theme.BarHeight, barColor)

	rl.DrawText(fmt.Sprintf("%3.0f%%", ratio*100), barX+barWidth+5, y, r.Theme.FontSize, r.Theme.ValueColor)

	return y + r.Theme.LineHeight + 2
}

// Button draws a raygui button and reports whether it was clicked this frame.
func (r *Renderer) Button(x, y, width, height int32, text string) bool {
	return gui.Button(rl.Rectangle{
		X:      float32(x),
		Y:      float32(y),
		Width:  float32(width),
		Height: float32(height),
	}, text)
}

// BudgetRatio returns used/budget, or 0 when there is no budget.
func BudgetRatio(used, budget float32) float32 {
	if budget <= 0 || used <= 0 {
		return 0
	}
	return used / budget
}
