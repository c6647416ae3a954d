/*
Package console finds a file descriptor referring to the text console and
installs packed pixel fonts on it.
*/
package console

import "errors"

var (
	// ErrNoConsole is returned by Open when none of the candidate devices
	// is a text console.
	ErrNoConsole = errors.New("console: could not get a file descriptor referring to the console")
	// ErrUnsupported is returned on platforms without a console font
	// interface.
	ErrUnsupported = errors.New("console: not supported on this platform")

	errNotConsole = errors.New("console: not a console")
)

// Candidate devices, tried in order before falling back to the standard
// file descriptors.
var candidates = []string{
	"/dev/tty",
	"/dev/tty0",
	"/dev/console",
}

// Console is an open handle on a text console.
type Console struct {
	name  string
	fd    int
	owned bool
}

// Name returns the device the console was found on.
func (c *Console) Name() string {
	return c.name
}
