package consolefont

import (
	"bufio"
	"fmt"
	"io"
)

// Dump writes a listing of every glyph to w: the character code on a line
// of its own followed by one line per row of pixels in hex.
func (f *Font) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for ch := 0; ch < Glyphs; ch++ {
		fmt.Fprintf(bw, "%d 0x%02X\n", ch, ch)
		for y := 0; y < f.Height; y++ {
			row := f.Data[ch*f.glyphBytes()+y*f.rowBytes():]
			for x := 0; x < f.Width; x++ {
				p := row[BytesPerPixel*x:]
				fmt.Fprintf(bw, "%02x,%02x,%02x,%02x ", p[0], p[1], p[2], p[3])
			}
			fmt.Fprintln(bw)
		}
	}

	return bw.Flush()
}
