package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds the runtime overlays (FPS, heap, active section). All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowSection  bool
	// Section reports the active section index and the section count.
	Section func() (index, count int)

	font         rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount   uint32
	fpsText      string
	memText      string
	sectionText  string
	sectionIndex int
	sectionCount int
	memStats     runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont sets the font used to draw the overlay. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// SectionText formats the active section line, 1-based for display.
func SectionText(index, count int) string {
	return fmt.Sprintf("Section: %d/%d", index+1, count)
}

// Draw renders the enabled overlays at the top-right in green, one line each.
// FPS and memory text are only recomputed every updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if (d.ShowFPS && d.fpsText == "") || (d.ShowMemAlloc && d.memText == "") {
		update = true
	}

	y := float32(padding)
	if d.ShowFPS {
		if update {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawLine(d.fpsText, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		d.drawLine(d.memText, y)
		y += lineHeight
	}
	if d.ShowSection && d.Section != nil {
		if i, n := d.Section(); d.sectionText == "" || i != d.sectionIndex || n != d.sectionCount {
			d.sectionIndex, d.sectionCount = i, n
			d.sectionText = SectionText(i, n)
		}
		d.drawLine(d.sectionText, y)
	}
}

func (d *Debug) drawLine(text string, y float32) {
	if text == "" {
		return
	}
	screenW := float32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		sz := float32(fontSize)
		pos := rl.NewVector2(screenW-rl.MeasureTextEx(d.font, text, sz, 1).X-padding, y)
		rl.DrawTextEx(d.font, text, pos, sz, 1, rl.Green)
		return
	}
	w := float32(rl.MeasureText(text, fontSize))
	rl.DrawText(text, int32(screenW-w-padding), int32(y), fontSize, rl.Green)
}
