package stylesheet

import (
	"image/color"
	"strconv"
	"strings"
)

// Align is horizontal text alignment inside a node.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ComputedStyle holds resolved values used for drawing.
// LeftPct/TopPct: 0–100 for percentage positioning; -1 means use Left/Top as pixels.
// Padding is the offset (in pixels) from the node's left/top when drawing text.
type ComputedStyle struct {
	Background color.RGBA
	Color      color.RGBA
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32 // -1 = not set
	TopPct     int32 // -1 = not set
	WidthPct   int32 // -1 = not set
	FontSize   int32
	Padding    int32
	Align      Align
}

// DefaultComputedStyle returns a minimal style (transparent background, white 20px text, zero size).
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: color.RGBA{},
		Color:      color.RGBA{255, 255, 255, 255},
		LeftPct:    -1,
		TopPct:     -1,
		WidthPct:   -1,
		FontSize:   20,
		Padding:    0,
		Align:      AlignLeft,
	}
}

// ParseHexColor parses #RGB or #RRGGBB (alpha 255). Returns black and false on parse error.
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return color.RGBA{A: 255}, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexByte(hex[i]); !ok {
			return color.RGBA{A: 255}, false
		}
	}
	h := func(i int) uint8 {
		v, _ := hexByte(hex[i])
		return v
	}
	switch len(hex) {
	case 3:
		return color.RGBA{h(0) * 17, h(1) * 17, h(2) * 17, 255}, true
	case 6:
		return color.RGBA{h(0)<<4 + h(1), h(2)<<4 + h(3), h(4)<<4 + h(5), 255}, true
	}
	return color.RGBA{A: 255}, false
}

func hexByte(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ParsePx parses a number, with optional "px" suffix, to int32. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" to int32 (0–100).
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// ResolveProps builds a ComputedStyle from a merged property map.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background", "background-color":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "width":
			if pct, ok := ParsePct(v); ok {
				out.WidthPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "text-align":
			switch strings.ToLower(v) {
			case "center":
				out.Align = AlignCenter
			case "right":
				out.Align = AlignRight
			default:
				out.Align = AlignLeft
			}
		}
	}
	return out
}

// Box is a placed rectangle in screen pixels.
type Box struct {
	X, Y, W, H int32
}

// Place resolves the style's size and position on a sw×sh screen. Width falls back to the full
// screen width and height to the font size plus padding on both sides. Percentage left/top
// position the box within the remaining space, so 50% centers it.
func (c ComputedStyle) Place(sw, sh int32) Box {
	b := Box{X: c.Left, Y: c.Top, W: c.Width, H: c.Height}
	switch {
	case c.WidthPct >= 0:
		b.W = sw * c.WidthPct / 100
	case b.W <= 0:
		b.W = sw
	}
	if b.H <= 0 {
		b.H = c.FontSize + 2*c.Padding
	}
	if c.LeftPct >= 0 {
		b.X = (sw - b.W) * c.LeftPct / 100
	}
	if c.TopPct >= 0 {
		b.Y = (sh - b.H) * c.TopPct / 100
	}
	return b
}

// RowY is the top of row i in a strip of rows of height h starting at top, shifted by
// offsetPct percent of one row (offset -100 brings row 1 to the top).
func RowY(top, h int32, i int, offsetPct float32) float32 {
	return float32(top) + float32(i)*float32(h) + offsetPct/100*float32(h)
}
