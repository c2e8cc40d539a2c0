package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"SoundDraw/internal/board"
)

// Build lays out the board and its controls and wires controller change
// notifications to the widgets.
func Build(ctl *board.Controller, b *BoardWidget) (fyne.CanvasObject, *Controls) {
	b.SetInput(ctl)
	controls := NewControls(ctl)
	ctl.OnChange = func() { fyne.Do(controls.Update) }

	title := canvas.NewText("SoundDraw", theme.Color(theme.ColorNamePrimary))
	title.TextSize = 24
	title.TextStyle = fyne.TextStyle{Bold: true}
	header := container.NewBorder(nil, nil, title, controls.Counter)

	footer := container.NewVBox(controls.Toolbar(), controls.Status)
	return container.NewBorder(header, footer, nil, nil, container.NewCenter(b)), controls
}

// closeHandler stops any replay before releasing resources such as the
// audio device.
func closeHandler(ctl *board.Controller, release func()) func() {
	return func() {
		ctl.Stop()
		if release != nil {
			release()
		}
	}
}

func RunApp(ctl *board.Controller, b *BoardWidget, onClosed func()) {
	myApp := app.New()
	myWindow := myApp.NewWindow("SoundDraw")
	w, h := b.raster.Size()
	myWindow.Resize(fyne.NewSize(float32(w)+48, float32(h)+220))

	content, _ := Build(ctl, b)
	myWindow.SetContent(content)
	myWindow.SetOnClosed(closeHandler(ctl, onClosed))
	myWindow.ShowAndRun()
}
