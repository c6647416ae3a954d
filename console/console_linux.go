package console

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/bodgit/setfont/consolefont"
	"golang.org/x/sys/unix"
)

// From <linux/kd.h>
const (
	kdGetKeyboardType = 0x4b33 // KDGKBTYPE
	kdFontOp          = 0x4b72 // KDFONTOP

	kb84  = 0x01
	kb101 = 0x02

	kdFontOpSet = 0
)

// Mirrors struct console_font_op
type fontOp struct {
	op        uint32
	flags     uint32
	width     uint32
	height    uint32
	charcount uint32
	data      *byte
}

func ioctl(fd int, req uint, arg unsafe.Pointer) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(arg)); errno != 0 {
		return errno
	}
	return nil
}

func isConsole(fd int) bool {
	var kb byte
	if err := ioctl(fd, kdGetKeyboardType, unsafe.Pointer(&kb)); err != nil {
		return false
	}
	return kb == kb101 || kb == kb84
}

func openConsole(name string) (int, error) {
	fd, err := unix.Open(name, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err == unix.EACCES {
		fd, err = unix.Open(name, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	}
	if err == unix.EACCES {
		fd, err = unix.Open(name, unix.O_WRONLY|unix.O_CLOEXEC, 0)
	}
	if err != nil {
		return -1, err
	}

	if !isConsole(fd) {
		unix.Close(fd)
		return -1, errNotConsole
	}

	return fd, nil
}

// Open returns the first candidate device that is a text console, falling
// back to standard input, output and error.
func Open() (*Console, error) {
	for _, name := range candidates {
		if fd, err := openConsole(name); err == nil {
			return &Console{name: name, fd: fd, owned: true}, nil
		}
	}

	for fd := 0; fd < 3; fd++ {
		if isConsole(fd) {
			return &Console{name: fmt.Sprintf("fd %d", fd), fd: fd}, nil
		}
	}

	return nil, ErrNoConsole
}

// SetFont installs f on the console with a single KDFONTOP request.
func (c *Console) SetFont(f *consolefont.Font) error {
	if len(f.Data) != consolefont.Size(f.Width, f.Height) || len(f.Data) == 0 {
		return consolefont.ErrBadLength
	}

	op := fontOp{
		op:        kdFontOpSet,
		width:     uint32(f.Width),
		height:    uint32(f.Height),
		charcount: consolefont.Glyphs,
		data:      &f.Data[0],
	}

	err := ioctl(c.fd, kdFontOp, unsafe.Pointer(&op))
	runtime.KeepAlive(f)
	if err != nil {
		return fmt.Errorf("console: set font on %s: %w", c.name, err)
	}

	return nil
}

// Close releases the console. Standard file descriptors are left open.
func (c *Console) Close() error {
	if !c.owned {
		return nil
	}
	return unix.Close(c.fd)
}
