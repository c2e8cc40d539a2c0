package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SoundDraw/internal/board"
	"SoundDraw/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Entry    state.PaletteEntry
	Selected bool
	OnTapped func(state.ColorID)
	disabled bool
	border   *canvas.Rectangle
}

func newColorSwatch(e state.PaletteEntry, tapped func(state.ColorID)) *colorSwatch {
	s := &colorSwatch{Entry: e, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Entry.ID.RGBA())
	rect.SetMinSize(fyne.NewSize(32, 32))

	s.border = canvas.NewRectangle(color.Transparent)
	s.border.StrokeWidth = 2
	s.updateBorder()

	label := canvas.NewText(s.Entry.Instrument, theme.Color(theme.ColorNamePlaceHolder))
	label.TextSize = theme.CaptionTextSize()
	label.Alignment = fyne.TextAlignCenter

	return widget.NewSimpleRenderer(container.NewVBox(container.NewStack(rect, s.border), label))
}

func (s *colorSwatch) updateBorder() {
	if s.border == nil {
		return
	}
	if s.Selected {
		s.border.StrokeColor = theme.Color(theme.ColorNamePrimary)
	} else {
		s.border.StrokeColor = color.Gray{Y: 150}
	}
	s.border.Refresh()
}

func (s *colorSwatch) SetSelected(selected bool) {
	s.Selected = selected
	s.updateBorder()
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.disabled || s.OnTapped == nil {
		return
	}
	s.OnTapped(s.Entry.ID)
}

// Controls holds the instrument palette, transport buttons and the stroke
// counter, kept in sync with the controller by Update.
type Controls struct {
	ctl      *board.Controller
	swatches []*colorSwatch
	Replay   *widget.Button
	Stop     *widget.Button
	Clear    *widget.Button
	Counter  *widget.Label
	Status   *widget.Label

	// Save and Open are placeholders; drawings are not persisted.
	Save *widget.ToolbarAction
	Open *widget.ToolbarAction
}

func NewControls(ctl *board.Controller) *Controls {
	c := &Controls{
		ctl:     ctl,
		Counter: widget.NewLabel(""),
		Status:  widget.NewLabel("Ready"),
	}
	for _, e := range state.Palette {
		c.swatches = append(c.swatches, newColorSwatch(e, ctl.SetColor))
	}
	c.Replay = widget.NewButtonWithIcon("Replay", theme.MediaPlayIcon(), ctl.Replay)
	c.Replay.Importance = widget.HighImportance
	c.Stop = widget.NewButtonWithIcon("Stop", theme.MediaStopIcon(), ctl.Stop)
	c.Clear = widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), ctl.Clear)
	c.Save = widget.NewToolbarAction(theme.DocumentSaveIcon(), c.notImplemented("Save"))
	c.Open = widget.NewToolbarAction(theme.FolderOpenIcon(), c.notImplemented("Open"))
	c.Update()
	return c
}

// Update refreshes enablement, selection and the counter. Call on the
// fyne goroutine.
func (c *Controls) Update() {
	replaying := c.ctl.Replaying()
	count := c.ctl.StrokeCount()
	selected := c.ctl.Color()

	for _, s := range c.swatches {
		s.disabled = replaying
		s.SetSelected(s.Entry.ID == selected)
	}
	setEnabled(c.Replay, count > 0 && !replaying)
	setEnabled(c.Stop, replaying)
	setEnabled(c.Clear, count > 0 && !replaying)

	c.Counter.SetText(StrokeCountText(count))
	if replaying {
		c.Status.SetText("Replaying...")
	} else if c.Status.Text == "Replaying..." {
		c.Status.SetText("Ready")
	}
}

func (c *Controls) notImplemented(what string) func() {
	return func() {
		log.Printf("[UI] %s requested, not implemented", what)
		c.Status.SetText(what + " is not implemented")
	}
}

// StrokeCountText renders the header counter.
func StrokeCountText(n int) string {
	if n == 1 {
		return "1 stroke"
	}
	return fmt.Sprintf("%d strokes", n)
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}

// --- The Main Toolbar ---
func (c *Controls) Toolbar() fyne.CanvasObject {
	tb := widget.NewToolbar(c.Save, c.Open)

	palette := container.NewHBox()
	for _, s := range c.swatches {
		palette.Add(s)
	}

	return container.NewVBox(
		container.NewHBox(
			layout.NewSpacer(),
			widget.NewLabel("Instrument:"),
			palette,
			layout.NewSpacer(),
		),
		container.NewHBox(
			layout.NewSpacer(),
			c.Replay,
			c.Stop,
			c.Clear,
			widget.NewSeparator(),
			tb,
			layout.NewSpacer(),
		),
	)
}
