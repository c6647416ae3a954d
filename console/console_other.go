//go:build !linux

package console

import "github.com/bodgit/setfont/consolefont"

// Open always fails with ErrUnsupported.
func Open() (*Console, error) {
	return nil, ErrUnsupported
}

// SetFont always fails with ErrUnsupported.
func (c *Console) SetFont(f *consolefont.Font) error {
	return ErrUnsupported
}

// Close does nothing.
func (c *Console) Close() error {
	return nil
}
