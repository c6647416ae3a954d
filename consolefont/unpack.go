package consolefont

import "github.com/bodgit/setfont/pnm"

// Unpack draws the glyphs of f back onto a 24-bit glyph sheet. The first pixel
// of glyph 0 is hidden under the magic tag so it always comes back black.
func Unpack(f *Font) *pnm.Image {
	m := pnm.New(f.Width*Columns, f.Height*Rows, 0xff)

	for ch := 0; ch < Glyphs; ch++ {
		top, left := f.Height*(ch/Columns), f.Width*(ch%Columns)
		for y := 0; y < f.Height; y++ {
			src := f.Data[ch*f.glyphBytes()+y*f.rowBytes():]
			dst := m.Pix[m.PixOffset(left, top+y):]
			for x := 0; x < f.Width; x++ {
				if ch == 0 && y == 0 && x == 0 {
					continue
				}
				dst[sheetChannels*x+0] = src[BytesPerPixel*x+2]
				dst[sheetChannels*x+1] = src[BytesPerPixel*x+1]
				dst[sheetChannels*x+2] = src[BytesPerPixel*x+0]
			}
		}
	}

	return m
}
