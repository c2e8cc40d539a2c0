package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"SoundDraw/internal/render"
	"SoundDraw/internal/state"
)

// StrokeInput receives pointer gestures in surface pixels.
type StrokeInput interface {
	BeginStroke(x, y float64)
	ExtendStroke(x, y float64)
	EndStroke()
}

// BoardWidget shows a render.Raster and turns mouse gestures into strokes.
// It is also the board.Surface the controller paints on.
type BoardWidget struct {
	widget.BaseWidget
	raster *render.Raster
	image  *canvas.Raster
	input  StrokeInput
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(r *render.Raster) *BoardWidget {
	b := &BoardWidget{raster: r}
	b.image = canvas.NewRaster(func(w, h int) image.Image {
		return b.raster.Image()
	})
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) SetInput(in StrokeInput) {
	b.input = in
}

// Clear implements board.Surface.
func (b *BoardWidget) Clear() {
	b.raster.Clear()
	b.repaint()
}

// DrawStroke implements board.Surface.
func (b *BoardWidget) DrawStroke(points []state.Point, color state.ColorID) {
	if len(points) < 2 {
		return
	}
	b.raster.DrawStroke(points, color)
	b.repaint()
}

// repaint may be called from replay timer goroutines.
func (b *BoardWidget) repaint() {
	fyne.Do(b.image.Refresh)
}

// toSurface maps widget coordinates onto raster pixels.
func (b *BoardWidget) toSurface(pos fyne.Position) (float64, float64) {
	w, h := b.raster.Size()
	size := b.Size()
	x, y := float64(pos.X), float64(pos.Y)
	if size.Width > 0 && size.Height > 0 {
		x *= float64(w) / float64(size.Width)
		y *= float64(h) / float64(size.Height)
	}
	return x, y
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || b.input == nil {
		return
	}
	b.input.BeginStroke(b.toSurface(e.Position))
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.input == nil {
		return
	}
	b.input.ExtendStroke(b.toSurface(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.endStroke()
	}
}

func (b *BoardWidget) DragEnd() { b.endStroke() }

// MouseOut ends the stroke like a pointer-up.
func (b *BoardWidget) MouseOut() { b.endStroke() }

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) endStroke() {
	if b.input != nil {
		b.input.EndStroke()
	}
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: b}
}

type boardWidgetRenderer struct {
	board *BoardWidget
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.image}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.board.image.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	w, h := r.board.raster.Size()
	return fyne.NewSize(float32(w), float32(h))
}

func (r *boardWidgetRenderer) Refresh() {
	r.board.image.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
