// Package hdr decodes Radiance RGBE (.hdr) panoramas into linear float radiance.
package hdr

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"
)

// Resolution limits. Larger files are rejected before any pixel memory is allocated.
const (
	maxSide   = 0x7fff
	maxPixels = 1 << 26
)

// ErrFormat is returned for input that is not a supported Radiance file.
var ErrFormat = errors.New("hdr: invalid format")

// Image is a linear RGB float image, row-major from the top.
type Image struct {
	Width  int
	Height int
	Pix    []float32 // 3 floats per pixel
}

// At returns the linear RGB radiance at (x, y).
func (m *Image) At(x, y int) (r, g, b float32) {
	i := (y*m.Width + x) * 3
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// Decode reads a Radiance file. Only the standard orientation (-Y H +X W) is supported.
func Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	w, h, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	m := &Image{Width: w, Height: h, Pix: make([]float32, w*h*3)}
	scan := make([]byte, w*4)
	for y := 0; y < h; y++ {
		if err := readScanline(br, scan, w); err != nil {
			return nil, fmt.Errorf("hdr: scanline %d: %w", y, err)
		}
		row := m.Pix[y*w*3:]
		for x := 0; x < w; x++ {
			row[x*3], row[x*3+1], row[x*3+2] = rgbe(scan[x*4], scan[x*4+1], scan[x*4+2], scan[x*4+3])
		}
	}
	return m, nil
}

func readHeader(br *bufio.Reader) (w, h int, err error) {
	magic, err := readLine(br)
	if err != nil {
		return 0, 0, fmt.Errorf("hdr: %w", err)
	}
	if magic != "#?RADIANCE" && magic != "#?RGBE" {
		return 0, 0, ErrFormat
	}
	for {
		line, err := readLine(br)
		if err != nil {
			return 0, 0, fmt.Errorf("hdr: header: %w", err)
		}
		if line == "" {
			break
		}
		if v, ok := strings.CutPrefix(line, "FORMAT="); ok && v != "32-bit_rle_rgbe" {
			return 0, 0, fmt.Errorf("%w: unsupported format %q", ErrFormat, v)
		}
	}
	res, err := readLine(br)
	if err != nil {
		return 0, 0, fmt.Errorf("hdr: resolution: %w", err)
	}
	f := strings.Fields(res)
	if len(f) != 4 || f[0] != "-Y" || f[2] != "+X" {
		return 0, 0, fmt.Errorf("%w: unsupported resolution line %q", ErrFormat, res)
	}
	h, err1 := strconv.Atoi(f[1])
	w, err2 := strconv.Atoi(f[3])
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: bad resolution %q", ErrFormat, res)
	}
	if w > maxSide || h > maxSide || w*h > maxPixels {
		return 0, 0, fmt.Errorf("%w: resolution %dx%d too large", ErrFormat, w, h)
	}
	return w, h, nil
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readScanline fills scan with w RGBE pixels. New-style RLE scanlines start with 2,2 followed by
// the 16-bit width and hold each channel run-length encoded separately; anything else is flat.
func readScanline(br *bufio.Reader, scan []byte, w int) error {
	head := make([]byte, 4)
	if _, err := io.ReadFull(br, head); err != nil {
		return err
	}
	if w < 8 || w > 0x7fff || head[0] != 2 || head[1] != 2 || head[2]&0x80 != 0 {
		copy(scan, head)
		_, err := io.ReadFull(br, scan[4:])
		return err
	}
	if int(head[2])<<8|int(head[3]) != w {
		return errors.New("scanline width mismatch")
	}
	for c := 0; c < 4; c++ {
		for x := 0; x < w; {
			n, err := br.ReadByte()
			if err != nil {
				return err
			}
			if n > 128 {
				run := int(n) - 128
				if x+run > w {
					return errors.New("run overflows scanline")
				}
				v, err := br.ReadByte()
				if err != nil {
					return err
				}
				for i := 0; i < run; i++ {
					scan[(x+i)*4+c] = v
				}
				x += run
				continue
			}
			count := int(n)
			if count == 0 || x+count > w {
				return errors.New("bad literal count")
			}
			for i := 0; i < count; i++ {
				v, err := br.ReadByte()
				if err != nil {
					return err
				}
				scan[(x+i)*4+c] = v
			}
			x += count
		}
	}
	return nil
}

func rgbe(r, g, b, e byte) (float32, float32, float32) {
	if e == 0 {
		return 0, 0, 0
	}
	f := float32(math.Ldexp(1, int(e)-(128+8)))
	return float32(r) * f, float32(g) * f, float32(b) * f
}

// Average returns the mean linear radiance over all pixels.
func (m *Image) Average() [3]float32 {
	var sum [3]float64
	n := m.Width * m.Height
	if n == 0 {
		return [3]float32{}
	}
	for i := 0; i < len(m.Pix); i += 3 {
		sum[0] += float64(m.Pix[i])
		sum[1] += float64(m.Pix[i+1])
		sum[2] += float64(m.Pix[i+2])
	}
	return [3]float32{float32(sum[0] / float64(n)), float32(sum[1] / float64(n)), float32(sum[2] / float64(n))}
}

// ToneMap converts to 8-bit sRGB-ish with Reinhard (c*e / (1 + c*e)) and gamma 2.2.
func (m *Image) ToneMap(exposure float32) *image.RGBA {
	if exposure <= 0 {
		exposure = 1
	}
	out := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			r, g, b := m.At(x, y)
			out.SetRGBA(x, y, color.RGBA{toByte(r, exposure), toByte(g, exposure), toByte(b, exposure), 255})
		}
	}
	return out
}

func toByte(c, exposure float32) uint8 {
	v := float64(c * exposure)
	v = v / (1 + v)
	v = math.Pow(v, 1/2.2)
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}
