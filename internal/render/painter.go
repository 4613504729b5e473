//go:build ebiten

package render

import (
	"image/color"

	"github.com/emjomi/life/pkg/life"
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads cell data into a size × size image and draws it scaled.
type GridPainter struct {
	size int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter returns a painter with no image yet; the first Blit
// allocates one.
func NewGridPainter() *GridPainter { return &GridPainter{} }

func (gp *GridPainter) ensure(size int) {
	if gp.img != nil && gp.size == size {
		return
	}
	if gp.img != nil {
		gp.img.Deallocate()
	}
	gp.size = size
	gp.buf = make([]byte, 4*size*size)
	gp.img = ebiten.NewImage(size, size)
}

// Blit draws cells scaled to fill a width × height area of dst. The image is
// reallocated when the grid size changes.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []life.Cell, size int, on, off color.Color, width, height int) {
	if size <= 0 || len(cells) != size*size {
		return
	}
	gp.ensure(size)
	fillCellsRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width)/float64(size), float64(height)/float64(size))
	dst.DrawImage(gp.img, op)
}
