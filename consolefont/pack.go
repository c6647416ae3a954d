package consolefont

import (
	"encoding/binary"

	"github.com/bodgit/setfont/pnm"
)

type packer struct {
	m    *pnm.Image
	font *Font
}

// inSheet reports whether the cell rows starting at (left, top) can be read
// from the sheet without running off its edges.
func (p *packer) inSheet(left, top int) bool {
	return left+p.font.Width <= p.m.Width && top+p.font.Height <= p.m.Height
}

func (p *packer) packGlyph(ch int) error {
	row, column := ch/Columns, ch%Columns
	top, left := p.font.Height*row, p.font.Width*column

	if !p.inSheet(left, top) {
		return nil
	}

	for y := 0; y < p.font.Height; y++ {
		src := p.m.Pix[p.m.PixOffset(left, top+y):]

		i := ch*p.font.glyphBytes() + y*p.font.rowBytes()
		if i+p.font.rowBytes() > len(p.font.Data) {
			return ErrCapacity
		}
		dst := p.font.Data[i : i+p.font.rowBytes()]

		// Sheet is red, green, blue; the font wants blue, green, red, unused
		for x := 0; x < p.font.Width; x++ {
			dst[BytesPerPixel*x+0] = src[sheetChannels*x+2]
			dst[BytesPerPixel*x+1] = src[sheetChannels*x+1]
			dst[BytesPerPixel*x+2] = src[sheetChannels*x+0]
		}
	}

	return nil
}

// Pack slices the glyph sheet m into 256 glyph cells and packs them into a
// new Font. The sheet is only read.
func Pack(m *pnm.Image) (*Font, error) {
	width, height := m.Width/Columns, m.Height/Rows

	p := packer{
		m: m,
		font: &Font{
			Width:  width,
			Height: height,
			Data:   make([]byte, Size(width, height)),
		},
	}

	for ch := 0; ch < Glyphs; ch++ {
		if err := p.packGlyph(ch); err != nil {
			return nil, err
		}
	}

	if len(p.font.Data) < magicSize {
		return nil, ErrCapacity
	}
	binary.NativeEndian.PutUint32(p.font.Data, Magic)

	return p.font, nil
}
