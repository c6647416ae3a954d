/*
Package setfont is a library for loading glyph sheets as pixel fonts on the
Linux text console.

A glyph sheet is a P6 image holding 256 glyphs in 8 rows of 32. It is packed
into a console font and handed to the console in one request.
*/
package setfont

import (
	"log"

	"github.com/bodgit/setfont/consolefont"
	"github.com/bodgit/setfont/pnm"
)

// Device is a console capable of installing a packed font.
type Device interface {
	SetFont(*consolefont.Font) error
	Close() error
}

// OpenFunc finds and opens a console Device.
type OpenFunc func() (Device, error)

type SetFont struct {
	open   OpenFunc
	logger *log.Logger
}

func New(open OpenFunc, logger *log.Logger) *SetFont {
	return &SetFont{
		open:   open,
		logger: logger,
	}
}

// Load reads the glyph sheet in file and packs it.
func (s *SetFont) Load(file string) (*consolefont.Font, error) {
	m, err := pnm.Load(file)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("Loaded \"%s\", %dx%d, maxval %d\n", file, m.Width, m.Height, m.MaxValue)

	if m.Width%consolefont.Columns != 0 || m.Height%consolefont.Rows != 0 {
		s.logger.Printf("Sheet is not a multiple of %dx%d glyphs, ignoring remaining pixels\n", consolefont.Columns, consolefont.Rows)
	}

	f, err := consolefont.Pack(m)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("Packed %d glyphs of %dx%d pixels\n", consolefont.Glyphs, f.Width, f.Height)

	return f, nil
}

// Install opens the console and installs f on it.
func (s *SetFont) Install(f *consolefont.Font) error {
	dev, err := s.open()
	if err != nil {
		return err
	}
	defer dev.Close()

	if err := dev.SetFont(f); err != nil {
		return err
	}
	s.logger.Printf("Installed %dx%d font\n", f.Width, f.Height)

	return nil
}

// InstallFile loads the glyph sheet in file and installs it. The console is
// not touched unless the sheet was packed successfully.
func (s *SetFont) InstallFile(file string) error {
	f, err := s.Load(file)
	if err != nil {
		return err
	}
	return s.Install(f)
}
