package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cellCoverage(t *testing.T, ch rune) int {
	t.Helper()
	img := buildFontAtlas()
	x0 := (int(ch) % FontCols) * FontCellW
	y0 := (int(ch) / FontCols) * FontCellH
	n := 0
	for y := y0; y < y0+FontCellH; y++ {
		for x := x0; x < x0+FontCellW; x++ {
			if img.NRGBAAt(x, y).A > 0 {
				n++
			}
		}
	}
	return n
}

func TestFontAtlas(t *testing.T) {
	img := buildFontAtlas()
	assert.Equal(t, FontAtlasW, img.Bounds().Dx())
	assert.Equal(t, FontAtlasH, img.Bounds().Dy())

	assert.Equal(t, FontCellW*FontCellH, cellCoverage(t, 0), "cell 0 is solid")
	assert.Zero(t, cellCoverage(t, ' '))
	assert.Greater(t, cellCoverage(t, 'A'), 10)
	assert.Greater(t, cellCoverage(t, '#'), cellCoverage(t, '.'))
}

func TestTextWidth(t *testing.T) {
	assert.Equal(t, 0, TextWidth("", 1))
	assert.Equal(t, 3*FontCellW*2, TextWidth("abc", 2))
	assert.Equal(t, 5*FontCellW, TextWidth("ab\nlonger\nx", 1)-FontCellW)
}
