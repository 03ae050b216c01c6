// Package signoff captures a supplier's payment-received signature: a small
// raster canvas drawn with connected strokes, exported as a PNG data URL and
// merged into the supplier's event record.
package signoff

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

// Point is a canvas-space coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Canvas is a fixed-size white raster. Strokes draw in ink on top; Clear
// repaints white. Not safe for concurrent use.
type Canvas struct {
	img    *image.RGBA
	inked  bool
	width  int
	height int
}

var ink = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
	c.Clear()
	return c
}

// Stroke draws connected line segments through the given points. A single
// point draws a dot. Points outside the canvas are clipped, not errors.
func (c *Canvas) Stroke(points []Point) {
	if len(points) == 0 {
		return
	}
	if len(points) == 1 {
		c.plot(int(points[0].X), int(points[0].Y))
		return
	}
	for i := 1; i < len(points); i++ {
		c.line(points[i-1], points[i])
	}
}

// Clear repaints the canvas white and resets the inked flag.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	c.inked = false
}

// Empty reports whether nothing has been drawn since the last Clear.
func (c *Canvas) Empty() bool { return !c.inked }

// DataURL encodes the canvas as a base64 PNG data URL.
func (c *Canvas) DataURL() (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// line rasterizes one segment with integer Bresenham stepping.
func (c *Canvas) line(a, b Point) {
	x0, y0 := int(a.X), int(a.Y)
	x1, y1 := int(b.X), int(b.Y)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) plot(x, y int) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.img.SetRGBA(x, y, ink)
	c.inked = true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
