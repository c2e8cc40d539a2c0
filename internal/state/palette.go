package state

import (
	"fmt"
	"image/color"
)

// ColorID identifies a palette entry by its hex value.
type ColorID string

const (
	Red    ColorID = "#ef4444"
	Blue   ColorID = "#3b82f6"
	Green  ColorID = "#10b981"
	Yellow ColorID = "#f59e0b"
	Purple ColorID = "#a855f7"
)

// DefaultColor is selected when a session starts.
const DefaultColor = Red

type PaletteEntry struct {
	ID         ColorID
	Name       string
	Instrument string
}

// Palette lists the selectable colours in display order.
var Palette = []PaletteEntry{
	{ID: Red, Name: "Red", Instrument: "Piano"},
	{ID: Blue, Name: "Blue", Instrument: "Synth"},
	{ID: Green, Name: "Green", Instrument: "Pluck"},
	{ID: Yellow, Name: "Yellow", Instrument: "Bell"},
	{ID: Purple, Name: "Purple", Instrument: "Pad"},
}

func Lookup(id ColorID) (PaletteEntry, bool) {
	for _, e := range Palette {
		if e.ID == id {
			return e, true
		}
	}
	return PaletteEntry{}, false
}

// RGBA parses the "#rrggbb" id. Malformed ids come back opaque black.
func (c ColorID) RGBA() color.NRGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(string(c), "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
