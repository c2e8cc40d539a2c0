// Package render draws strokes into an in-memory image.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"SoundDraw/internal/state"
)

// Background is the colour the surface is cleared to.
var Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Raster is a fixed-size immediate-mode surface. Strokes are drawn as
// connected segments with round caps and joins.
type Raster struct {
	img       *image.NRGBA
	stroker   *rasterx.Stroker
	lineWidth float64
	mu        sync.Mutex
}

func NewRaster(width, height int, lineWidth float64) *Raster {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	r := &Raster{
		img:       img,
		stroker:   rasterx.NewStroker(width, height, scanner),
		lineWidth: lineWidth,
	}
	r.Clear()
	return r
}

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
}

func (r *Raster) DrawStroke(points []state.Point, c state.ColorID) {
	if len(points) < 2 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.stroker
	s.Clear()
	s.SetStroke(fixed.Int26_6(r.lineWidth*64), 0, rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round)
	s.SetColor(c.RGBA())
	s.Start(rasterx.ToFixedP(points[0].X, points[0].Y))
	for _, p := range points[1:] {
		s.Line(rasterx.ToFixedP(p.X, p.Y))
	}
	s.Stop(false)
	s.Draw()
	s.Clear()
}

// Image returns a copy of the current pixels.
func (r *Raster) Image() *image.NRGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := image.NewNRGBA(r.img.Bounds())
	copy(out.Pix, r.img.Pix)
	return out
}
