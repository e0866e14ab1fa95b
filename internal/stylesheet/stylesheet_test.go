package stylesheet

import (
	"image/color"
	"testing"
)

const headingsCSS = `
/* window the headings slide through */
.headings {
  left: 50%;
  top: 10%;
  width: 80%;
  height: 120px;
}
.heading { color: #fff; font-size: 96px; text-align: center; }
#title { color: #ff8800; }
div > .heading { color: #000; }
.heading { padding: 4px; }
`

func TestParse(t *testing.T) {
	sheet, err := ParseString(headingsCSS)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	sels := make([]string, 0, len(sheet.Rules))
	for _, r := range sheet.Rules {
		sels = append(sels, r.Selector)
	}
	want := []string{".headings", ".heading", "#title", ".heading"}
	if len(sels) != len(want) {
		t.Fatalf("selectors = %v, want %v", sels, want)
	}
	for i := range want {
		if sels[i] != want[i] {
			t.Fatalf("selectors = %v, want %v", sels, want)
		}
	}
	if got := sheet.Rules[0].Props["height"]; got != "120px" {
		t.Errorf("height = %q, want 120px", got)
	}
}

func TestResolve(t *testing.T) {
	sheet, err := ParseString(`.heading { color: #fff; font-size: 96px; } #first { color: #f00; } .heading { padding: 4px; }`)
	if err != nil {
		t.Fatal(err)
	}
	props := sheet.Resolve("heading", "first")
	style := ResolveProps(props)
	if style.Color != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("color = %v, want id rule to win", style.Color)
	}
	if style.FontSize != 96 || style.Padding != 4 {
		t.Errorf("font-size = %d padding = %d", style.FontSize, style.Padding)
	}
	if len(sheet.Resolve("other", "")) != 0 {
		t.Error("unmatched class resolved properties")
	}
	var nilSheet *Stylesheet
	if len(nilSheet.Resolve("heading", "")) != 0 {
		t.Error("nil sheet resolved properties")
	}
}

func TestResolvePropsPositioning(t *testing.T) {
	s := ResolveProps(map[string]string{"left": "50%", "top": "12px", "width": "80%", "height": "120", "text-align": "center"})
	if s.LeftPct != 50 || s.TopPct != -1 || s.Top != 12 || s.WidthPct != 80 || s.Height != 120 || s.Align != AlignCenter {
		t.Fatalf("style = %+v", s)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#ffffff", color.RGBA{255, 255, 255, 255}, true},
		{"#0f0", color.RGBA{0, 255, 0, 255}, true},
		{" #FF8800 ", color.RGBA{255, 136, 0, 255}, true},
		{"#ggg", color.RGBA{A: 255}, false},
		{"red", color.RGBA{A: 255}, false},
		{"#12345", color.RGBA{A: 255}, false},
	}
	for _, tt := range tests {
		got, ok := ParseHexColor(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v,%v want %v,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPlace(t *testing.T) {
	sheet, err := ParseString(headingsCSS)
	if err != nil {
		t.Fatal(err)
	}
	style := ResolveProps(sheet.Resolve("headings", ""))
	got := style.Place(1000, 500)
	want := Box{X: 100, Y: 38, W: 800, H: 120}
	if got != want {
		t.Errorf("Place = %+v, want %+v", got, want)
	}

	// no size: full width, height from font and padding
	fallback := ResolveProps(map[string]string{"font-size": "30px", "padding": "5px"}).Place(640, 480)
	if fallback != (Box{W: 640, H: 40}) {
		t.Errorf("fallback Place = %+v", fallback)
	}
}

func TestRowY(t *testing.T) {
	tests := []struct {
		i      int
		offset float32
		want   float32
	}{
		{0, 0, 50},
		{1, 0, 170},
		{1, -100, 50},
		{3, -300, 50},
		{0, -50, -10},
	}
	for _, tt := range tests {
		if got := RowY(50, 120, tt.i, tt.offset); got != tt.want {
			t.Errorf("RowY(50, 120, %d, %v) = %v, want %v", tt.i, tt.offset, got, tt.want)
		}
	}
}
