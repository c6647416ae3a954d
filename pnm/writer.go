package pnm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

type encoder struct {
	w *bufio.Writer
}

func (e *encoder) encode(m *Image) error {
	if _, err := fmt.Fprintf(e.w, "%s\n%d %d\n%d\n", fingerprint, m.Width, m.Height, m.MaxValue); err != nil {
		return err
	}

	if _, err := e.w.Write(m.Pix); err != nil {
		return err
	}

	return e.w.Flush()
}

// Encode writes the Image m to w in P6 format.
func Encode(w io.Writer, m *Image) error {
	if m.Width <= 0 || m.Height <= 0 || m.Width > 0xffff || m.Height > 0xffff {
		return errors.New("pnm: image is wrong size")
	}
	if m.MaxValue <= 0 || m.MaxValue > 0xffff {
		return errors.New("pnm: invalid maxval")
	}
	if len(m.Pix) != channels*m.Width*m.Height {
		return errors.New("pnm: pixel data does not match dimensions")
	}

	e := encoder{w: bufio.NewWriter(w)}

	return e.encode(m)
}
