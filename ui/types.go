// Package ui draws the on-screen HUD and panels over the presented framebuffer.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	TitleColor     rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	StatusRunning  rl.Color
	StatusPaused   rl.Color
	BarBg          rl.Color
	BarFill        rl.Color
	BarFillMedium  rl.Color
	BarFillHigh    rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
	TitleFontSize  int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 200},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		TitleColor:     rl.White,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.LightGray,
		StatusRunning:  rl.Green,
		StatusPaused:   rl.Yellow,
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFill:        rl.Color{R: 100, G: 200, B: 100, A: 255},
		BarFillMedium:  rl.Color{R: 200, G: 180, B: 100, A: 255},
		BarFillHigh:    rl.Color{R: 200, G: 100, B: 100, A: 255},
		Padding:        8,
		LineHeight:     16,
		LabelWidth:     70,
		BarHeight:      10,
		FontSize:       12,
		HeaderFontSize: 14,
		TitleFontSize:  18,
	}
}
