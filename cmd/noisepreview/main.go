// Noise preview tool - interactive noise explorer with sliders.
//
// Usage: go run ./cmd/noisepreview [-noise perlin] [-seed 42]
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/kanvas/export"
	"github.com/pthm-cable/kanvas/noise"
	"github.com/pthm-cable/kanvas/raster"
)

const (
	windowWidth  = 1000
	windowHeight = 620
	previewSize  = 512
	gridSize     = 256
	panelWidth   = windowWidth - previewSize - 30
)

// PreviewParams holds the noise parameters being explored.
type PreviewParams struct {
	Kind       noise.Kind
	Scale      float32
	Octaves    int
	Lacunarity float32
	Gain       float32
	DriftX     float32
	DriftY     float32
	Seed       int64
	Heat       bool
}

func defaultParams() PreviewParams {
	return PreviewParams{
		Kind:       noise.KindPerlin,
		Scale:      0.02,
		Octaves:    1,
		Lacunarity: 2,
		Gain:       0.5,
		DriftX:     0.5,
		DriftY:     0,
		Seed:       noise.DefaultSeed,
	}
}

func main() {
	kindName := flag.String("noise", noise.KindPerlin.String(), "Initial noise kind ("+kindList()+")")
	seed := flag.Int64("seed", noise.DefaultSeed, "Initial noise seed")
	flag.Parse()

	kind, err := noise.ParseKind(*kindName)
	if err != nil {
		slog.Error("invalid -noise", "error", err)
		os.Exit(1)
	}

	rl.InitWindow(windowWidth, windowHeight, "Noise Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()
	params.Kind = kind
	params.Seed = *seed
	fb := raster.MustNew(gridSize, gridSize)
	saver := &export.Saver{Dir: export.DefaultDir, Scale: 2}

	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)
	pixels := make([]color.RGBA, gridSize*gridSize)

	var time float32
	animating := false
	needsRegen := true
	status := ""

	for !rl.WindowShouldClose() {
		if animating {
			time += rl.GetFrameTime()
			needsRegen = true
		}

		if needsRegen {
			render(fb, params, time)
			fb.CopyRGBA(pixels)
			rl.UpdateTexture(texture, pixels)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: gridSize, Height: gridSize},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		minVal, maxVal, avg := stats(fb)
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Min: %.3f  Max: %.3f  Avg: %.3f", minVal, maxVal, avg), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Time: %.1f  %s", time, status), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Noise Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		kind := noise.Kind(slider(&panelY, panelX, "Kind: "+params.Kind.String(), "%.0f",
			float32(params.Kind), 0, float32(len(noise.Kinds())-1)) + 0.5)
		if kind != params.Kind {
			params.Kind = kind
			needsRegen = true
		}

		if v := slider(&panelY, panelX, "Scale (noise units per pixel)", "%.3f", params.Scale, 0.002, 0.1); v != params.Scale {
			params.Scale = v
			needsRegen = true
		}
		if v := int(slider(&panelY, panelX, "Octaves (FBM detail level)", "%.0f", float32(params.Octaves), 1, 8)); v != params.Octaves {
			params.Octaves = v
			needsRegen = true
		}
		if v := slider(&panelY, panelX, "Lacunarity (frequency multiplier)", "%.2f", params.Lacunarity, 1.5, 4); v != params.Lacunarity {
			params.Lacunarity = v
			needsRegen = true
		}
		if v := slider(&panelY, panelX, "Gain (amplitude multiplier)", "%.2f", params.Gain, 0.2, 0.9); v != params.Gain {
			params.Gain = v
			needsRegen = true
		}
		params.DriftX = slider(&panelY, panelX, "Drift X (units per second)", "%.2f", params.DriftX, 0, 2)
		params.DriftY = slider(&panelY, panelX, "Drift Y (units per second)", "%.2f", params.DriftY, 0, 2)
		if v := int64(slider(&panelY, panelX, "Seed", "%.0f", float32(params.Seed), 0, 99999)); v != params.Seed {
			params.Seed = v
			needsRegen = true
		}
		panelY += 10

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, toggleText(params.Heat, "Grayscale", "Heat map")) {
			params.Heat = !params.Heat
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 99999))
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			time = 0
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 250, Height: 30}, "Save PNG") || rl.IsKeyPressed(rl.KeyS) {
			path, err := saver.Save(fb, "noise_"+params.Kind.String())
			if err != nil {
				slog.Warn("save failed", "error", err)
				status = "save failed"
			} else {
				slog.Info("preview saved", "path", path)
				status = "saved " + path
			}
		}

		rl.DrawText("Press S to save, C to copy settings", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(fmt.Sprintf("noise:\n  seed: %d\n# kind: %s scale: %.3f octaves: %d lacunarity: %.2f gain: %.2f",
				params.Seed, params.Kind, params.Scale, params.Octaves, params.Lacunarity, params.Gain))
		}

		rl.EndDrawing()
	}
}

// slider draws a labelled raygui slider and advances y past it.
func slider(y *float32, x float32, label, format string, value, lo, hi float32) float32 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		"", "",
		value, lo, hi,
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	return v
}

func kindList() string {
	names := make([]string, 0, len(noise.Kinds()))
	for _, k := range noise.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// render fills fb with FBM of the selected source, shifted by the drift.
func render(fb *raster.FrameBuffer, params PreviewParams, t float32) {
	src := noise.NewSource(params.Kind, params.Seed)
	offX := float64(t * params.DriftX)
	offY := float64(t * params.DriftY)
	scale := float64(params.Scale)

	fb.Fill(func(x, y int) raster.Color {
		v := noise.FBM(src, float64(x)*scale+offX, float64(y)*scale+offY,
			params.Octaves, float64(params.Lacunarity), float64(params.Gain))
		if params.Heat {
			return heat(v)
		}
		return raster.Gray(uint8(v * 255))
	})
}

// heat maps v through dark blue, cyan, yellow-green and white.
func heat(v float64) raster.Color {
	stops := []raster.Color{
		raster.RGB(10, 20, 60),
		raster.RGB(40, 80, 160),
		raster.RGB(60, 200, 200),
		raster.RGB(200, 160, 50),
		raster.RGB(255, 255, 255),
	}
	pos := v * float64(len(stops)-1)
	i := min(max(int(pos), 0), len(stops)-2)
	return stops[i].Lerp(stops[i+1], pos-float64(i))
}

// stats returns the min, max and mean red channel of fb in [0, 1].
func stats(fb *raster.FrameBuffer) (minVal, maxVal, avg float64) {
	pix := fb.Pix()
	minVal, maxVal = 1, 0
	var sum float64
	for i := 0; i < len(pix); i += 3 {
		v := float64(pix[i]) / 255
		sum += v
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	return minVal, maxVal, sum / float64(len(pix)/3)
}
