package audio

import "math"

// Visualization colours.
const (
	BackgroundColor = "#fafafa"
	BarColor        = "#8B5CF6"
)

// Canvas is a fixed-size grid of hex colours, origin at the top-left.
type Canvas struct {
	width  int
	height int
	pixels []string
}

// NewCanvas returns a canvas cleared to [BackgroundColor].
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		pixels: make([]string, width*height),
	}
	c.Clear(BackgroundColor)
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// At returns the colour at x, y, or "" outside the canvas.
func (c *Canvas) At(x, y int) string {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return ""
	}
	return c.pixels[y*c.width+x]
}

// Clear fills the whole canvas with color.
func (c *Canvas) Clear(color string) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
}

// FillRect fills the rectangle clipped to the canvas.
func (c *Canvas) FillRect(x, y, w, h int, color string) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.width), min(y+h, c.height)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			c.pixels[row*c.width+col] = color
		}
	}
}

// Snapshot returns a copy of the pixels, row-major.
func (c *Canvas) Snapshot() []string {
	out := make([]string, len(c.pixels))
	copy(out, c.pixels)
	return out
}

// DrawBars clears c and draws one bottom-anchored bar per level. Each bar is
// width/len(levels)-1 pixels wide (at least one) followed by a one-pixel gap;
// its height is level*height.
func DrawBars(c *Canvas, levels []float64) {
	c.Clear(BackgroundColor)
	if len(levels) == 0 {
		return
	}

	barWidth := float64(c.width)/float64(len(levels)) - 1
	if barWidth < 1 {
		barWidth = 1
	}

	x := 0.0
	for _, level := range levels {
		level = math.Max(0, math.Min(1, level))
		h := int(math.Round(level * float64(c.height)))
		if h > 0 {
			c.FillRect(int(math.Round(x)), c.height-h, int(math.Round(barWidth)), h, BarColor)
		}
		x += barWidth + 1
	}
}
