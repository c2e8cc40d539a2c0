package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteHasFiveEntries(t *testing.T) {
	assert.Len(t, Palette, 5)
	assert.Equal(t, DefaultColor, Palette[0].ID)

	seen := map[ColorID]bool{}
	for _, e := range Palette {
		assert.False(t, seen[e.ID], "duplicate %s", e.ID)
		seen[e.ID] = true
		assert.NotEmpty(t, e.Name)
		assert.NotEmpty(t, e.Instrument)
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup(Yellow)
	assert.True(t, ok)
	assert.Equal(t, "Bell", e.Instrument)

	_, ok = Lookup("#000000")
	assert.False(t, ok)
}

func TestColorIDRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0xef, G: 0x44, B: 0x44, A: 255}, Red.RGBA())
	assert.Equal(t, color.NRGBA{R: 0xa8, G: 0x55, B: 0xf7, A: 255}, Purple.RGBA())
	assert.Equal(t, color.NRGBA{A: 255}, ColorID("chartreuse").RGBA())
}
