package ui

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"planet-showcase/internal/stylesheet"
)

const (
	windowClass  = "headings"
	headingClass = "heading"
	fontLoadSize = 128
)

// HeadingStrip is a column of section headings seen through a fixed window. Heading i sits
// i window-heights below the first; Offset (percent of one height) slides the column, so
// offset -100·i shows heading i.
// Styles are resolved once per stylesheet change and bounds once per resize.
type HeadingStrip struct {
	sheet  *stylesheet.Stylesheet
	window *Node
	nodes  []*Node

	windowStyle stylesheet.ComputedStyle
	styles      []stylesheet.ComputedStyle
	cacheValid  bool
	box         stylesheet.Box
	screenW     int32
	screenH     int32

	offset float32
	font   rl.Font
}

// NewHeadingStrip creates one heading node per text: class "heading", id "heading-<i>".
func NewHeadingStrip(texts []string) *HeadingStrip {
	h := &HeadingStrip{window: NewNode(windowClass, "", "")}
	for i, text := range texts {
		h.nodes = append(h.nodes, NewNode(headingClass, fmt.Sprintf("heading-%d", i), text))
	}
	return h
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (h *HeadingStrip) LoadCSS(path string) error {
	sheet, err := stylesheet.Load(path)
	if err != nil {
		return err
	}
	h.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly.
func (h *HeadingStrip) SetStylesheet(sheet *stylesheet.Stylesheet) {
	h.sheet = sheet
	h.cacheValid = false
}

// LoadFont loads a TTF/OTF font from path. If loading fails, the strip keeps raylib's default font.
// Call after the window/OpenGL context exists.
func (h *HeadingStrip) LoadFont(path string) error {
	f := rl.LoadFontEx(path, fontLoadSize, nil)
	if f.Texture.ID == 0 {
		return fmt.Errorf("ui: %s: %w", path, os.ErrNotExist)
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	if h.font.Texture.ID != 0 {
		rl.UnloadFont(h.font)
	}
	h.font = f
	return nil
}

// Offset returns the current slide offset in percent of one heading height.
func (h *HeadingStrip) Offset() float32 {
	return h.offset
}

// SetOffset sets the slide offset; it is the heading tween's target.
func (h *HeadingStrip) SetOffset(v float32) {
	h.offset = v
}

// Font returns the loaded heading font; its texture ID is zero when none is loaded.
func (h *HeadingStrip) Font() rl.Font {
	return h.font
}

// Layout places the window and headings for a w×hgt screen. Call on resize.
func (h *HeadingStrip) Layout(w, hgt int32) {
	h.screenW, h.screenH = w, hgt
	h.resolveStyles()
	h.box = h.windowStyle.Place(w, hgt)
	h.window.Bounds = rl.NewRectangle(float32(h.box.X), float32(h.box.Y), float32(h.box.W), float32(h.box.H))
	for i, n := range h.nodes {
		n.Bounds = rl.NewRectangle(float32(h.box.X), stylesheet.RowY(h.box.Y, h.box.H, i, 0), float32(h.box.W), float32(h.box.H))
	}
}

func (h *HeadingStrip) resolveStyles() {
	if h.cacheValid {
		return
	}
	h.windowStyle = stylesheet.ResolveProps(h.sheet.Resolve(h.window.Class, h.window.ID))
	h.styles = make([]stylesheet.ComputedStyle, len(h.nodes))
	for i, n := range h.nodes {
		h.styles[i] = stylesheet.ResolveProps(h.sheet.Resolve(n.Class, n.ID))
	}
	h.cacheValid = true
}

// Draw draws the window background and the headings shifted by Offset, clipped to the window.
func (h *HeadingStrip) Draw() {
	if !h.cacheValid {
		h.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	}
	b := h.box
	if b.W <= 0 || b.H <= 0 {
		return
	}
	if bg := h.windowStyle.Background; bg.A > 0 {
		rl.DrawRectangle(b.X, b.Y, b.W, b.H, bg)
	}
	rl.BeginScissorMode(b.X, b.Y, b.W, b.H)
	for i, n := range h.nodes {
		y := stylesheet.RowY(b.Y, b.H, i, h.offset)
		if y+float32(b.H) <= float32(b.Y) || y >= float32(b.Y+b.H) {
			continue
		}
		h.drawHeading(n, h.styles[i], y)
	}
	rl.EndScissorMode()
}

func (h *HeadingStrip) drawHeading(n *Node, style stylesheet.ComputedStyle, y float32) {
	b := h.box
	if style.Background.A > 0 {
		rl.DrawRectangle(b.X, int32(y), b.W, b.H, style.Background)
	}
	if n.Text == "" {
		return
	}
	size := float32(style.FontSize)
	var textW float32
	if h.font.Texture.ID != 0 {
		textW = rl.MeasureTextEx(h.font, n.Text, size, 1).X
	} else {
		textW = float32(rl.MeasureText(n.Text, style.FontSize))
	}
	pad := float32(style.Padding)
	x := float32(b.X) + pad
	switch style.Align {
	case stylesheet.AlignCenter:
		x = float32(b.X) + (float32(b.W)-textW)/2
	case stylesheet.AlignRight:
		x = float32(b.X+b.W) - textW - pad
	}
	ty := y + (float32(b.H)-size)/2
	if h.font.Texture.ID != 0 {
		rl.DrawTextEx(h.font, n.Text, rl.NewVector2(x, ty), size, 1, style.Color)
	} else {
		rl.DrawText(n.Text, int32(x), int32(ty), style.FontSize, style.Color)
	}
}

// Unload frees the font, if one was loaded.
func (h *HeadingStrip) Unload() {
	if h.font.Texture.ID != 0 {
		rl.UnloadFont(h.font)
		h.font = rl.Font{}
	}
}
