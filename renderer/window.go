// Package renderer presents framebuffers in a raylib window with a raygui HUD.
package renderer

import (
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/kanvas/raster"
	"github.com/pthm-cable/kanvas/sketch"
	"github.com/pthm-cable/kanvas/telemetry"
	"github.com/pthm-cable/kanvas/ui"
)

// WindowOptions configures a Window.
type WindowOptions struct {
	Width, Height int // framebuffer size
	Scale         int // integer pixel scale, minimum 1
	Title         string
	TargetFPS     int
	// Perf feeds the timing panel toggled with P. Nil hides it.
	Perf *telemetry.PerfCollector
}

// Window uploads the framebuffer to a texture each frame and draws it scaled to
// the window. It is both the Presenter and the Input of a windowed run.
type Window struct {
	opts    WindowOptions
	texture rl.Texture2D
	pixels  []color.RGBA

	hud       *ui.HUD
	perfPanel *ui.PerfPanel
	ctrl      sketch.Controller

	showHUD  bool
	showPerf bool
	pending  sketch.InputState
	closed   bool
}

// NewWindow opens the window. It must be called from the main goroutine.
func NewWindow(opts WindowOptions) *Window {
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	screenW := int32(opts.Width * opts.Scale)
	screenH := int32(opts.Height * opts.Scale)

	rl.InitWindow(screenW, screenH, opts.Title)
	rl.SetExitKey(0)

	img := rl.GenImageColor(opts.Width, opts.Height, rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.SetTextureFilter(tex, rl.FilterPoint)
	rl.UnloadImage(img)

	return &Window{
		opts:      opts,
		texture:   tex,
		pixels:    make([]color.RGBA, opts.Width*opts.Height),
		hud:       ui.NewHUD(),
		perfPanel: ui.NewPerfPanel(screenW-250, 10, 240),
		showHUD:   true,
	}
}

// Attach gives the HUD access to loop state.
func (w *Window) Attach(c sketch.Controller) { w.ctrl = c }

// Poll reads keyboard state and any HUD button clicks since the last poll.
func (w *Window) Poll() sketch.InputState {
	in := w.pending
	w.pending = sketch.InputState{}

	if rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyEscape) {
		in.Quit = true
	}
	if rl.IsKeyPressed(rl.KeyS) {
		in.Save = true
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		in.ToggleLoop = !in.ToggleLoop
	}
	if rl.IsKeyPressed(rl.KeyH) {
		w.showHUD = !w.showHUD
	}
	if rl.IsKeyPressed(rl.KeyP) && w.opts.Perf != nil {
		w.showPerf = !w.showPerf
	}
	return in
}

// Present uploads fb and draws it with the overlays.
func (w *Window) Present(fb *raster.FrameBuffer) error {
	fb.CopyRGBA(w.pixels)
	rl.UpdateTexture(w.texture, w.pixels)

	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	srcRect := rl.Rectangle{X: 0, Y: 0, Width: float32(fb.Width()), Height: float32(fb.Height())}
	dstRect := rl.Rectangle{X: 0, Y: 0, Width: screenW, Height: screenH}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTexturePro(w.texture, srcRect, dstRect, rl.Vector2{}, 0, rl.White)

	if w.showHUD {
		w.drawHUD(fb)
		w.hud.DrawControls(int32(screenH))
	}
	if w.showPerf {
		w.perfPanel.SetPosition(int32(screenW)-250, 10)
		w.perfPanel.Draw(w.opts.Perf.Stats(), frameBudget(w.targetFPS()))
	}

	rl.EndDrawing()
	return nil
}

func (w *Window) drawHUD(fb *raster.FrameBuffer) {
	data := ui.HUDData{
		Title:     w.opts.Title,
		FPS:       rl.GetFPS(),
		TargetFPS: w.targetFPS(),
		Looping:   true,
		Width:     fb.Width(),
		Height:    fb.Height(),
	}
	if w.ctrl != nil {
		data.Frame = w.ctrl.Frame()
		data.Looping = w.ctrl.IsLooping()
	}

	actions := w.hud.Draw(data)
	if actions.ToggleLoop {
		w.pending.ToggleLoop = !w.pending.ToggleLoop
	}
	if actions.Save {
		w.pending.Save = true
	}
}

// Close releases the texture and closes the window. Safe to call twice.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	rl.UnloadTexture(w.texture)
	rl.CloseWindow()
	return nil
}

// targetFPS prefers the live rate of the attached driver, which follows config reloads.
func (w *Window) targetFPS() int {
	if r, ok := w.ctrl.(interface{ TargetFPS() int }); ok {
		return r.TargetFPS()
	}
	return w.opts.TargetFPS
}

func frameBudget(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}
