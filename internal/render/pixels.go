package render

import (
	"image/color"

	"github.com/emjomi/life/pkg/life"
)

// Palette colours used by the front-ends.
var (
	LiveColor = color.RGBA{R: 51, G: 209, B: 122, A: 255}
	DeadColor = color.RGBA{R: 24, G: 24, B: 28, A: 255}
)

// fillCellsRGBA converts cells into RGBA pixels in buf, which must hold at
// least 4*len(cells) bytes.
func fillCellsRGBA(buf []byte, cells []life.Cell, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == life.Live {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
