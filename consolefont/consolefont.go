/*
Package consolefont packs a glyph sheet into the pixel font layout accepted by
the console font-set interface.

The glyph sheet holds 256 glyphs arranged in 8 rows of 32 glyphs each, so the
size of a glyph cell is derived from the sheet dimensions. Any pixels left over
when the sheet size is not an exact multiple of the grid are ignored.

The packed font is written as 256 glyphs one after the other, each glyph as
its rows top to bottom and each pixel as four bytes: blue, green, red and an
unused byte that is always zero. The first four bytes of the buffer are then
overwritten with Magic so the console recognises the font as carrying pixel
data rather than a 1-bit glyph bitmap.
*/
package consolefont

import (
	"encoding/binary"
	"errors"
)

const (
	// Columns is the number of glyphs across the glyph sheet
	Columns = 32
	// Rows is the number of glyphs down the glyph sheet
	Rows = 8
	// Glyphs is the number of glyphs in a font
	Glyphs = Columns * Rows

	// BytesPerPixel is the size of a pixel in a packed font
	BytesPerPixel = 4

	// Magic marks a packed font as carrying per-glyph pixel data
	Magic uint32 = 0x6a127efd

	sheetChannels = 3
	magicSize     = 4
)

var (
	// ErrCapacity is returned when packing would write past the end of
	// the font buffer.
	ErrCapacity = errors.New("consolefont: glyph data exceeds font buffer")
	// ErrBadLength is returned when font data does not match the glyph
	// cell size.
	ErrBadLength = errors.New("consolefont: font data has the wrong length")
	// ErrBadMagic is returned when font data does not start with Magic.
	ErrBadMagic = errors.New("consolefont: font data is missing the magic tag")
)

// Font is a packed pixel font. Width and Height are the size of a single
// glyph cell in pixels.
type Font struct {
	Width, Height int
	Data          []byte
}

// Size returns the length in bytes of a packed font with the given glyph
// cell size.
func Size(width, height int) int {
	return BytesPerPixel * width * height * Glyphs
}

// New wraps previously packed font data, checking its length and magic tag.
func New(width, height int, data []byte) (*Font, error) {
	if width <= 0 || height <= 0 || len(data) != Size(width, height) {
		return nil, ErrBadLength
	}
	if binary.NativeEndian.Uint32(data) != Magic {
		return nil, ErrBadMagic
	}
	return &Font{
		Width:  width,
		Height: height,
		Data:   data,
	}, nil
}

func (f *Font) glyphBytes() int {
	return BytesPerPixel * f.Width * f.Height
}

func (f *Font) rowBytes() int {
	return BytesPerPixel * f.Width
}
