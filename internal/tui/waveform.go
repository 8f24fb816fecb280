package tui

import (
	"strings"

	"github.com/MKhiriev/go-desk-widget/internal/audio"
	"github.com/MKhiriev/go-desk-widget/models"
)

// brailleDots maps a pixel offset inside a 2x4 cell to its braille dot bit.
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

// renderWaveform packs the frame into braille cells, one cell per 2x4 pixels.
// Any pixel other than the background colour is drawn.
func renderWaveform(f models.Frame) string {
	if f.Width <= 0 || f.Height <= 0 {
		return ""
	}

	cols := (f.Width + 1) / 2
	rows := (f.Height + 3) / 4

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			cell := rune(brailleBase)
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					px := f.At(col*2+dx, row*4+dy)
					if px != "" && px != audio.BackgroundColor {
						cell |= brailleDots[dy][dx]
					}
				}
			}
			b.WriteRune(cell)
		}
	}
	return b.String()
}
