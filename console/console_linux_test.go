package console

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/setfont/consolefont"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenConsoleRegularFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tty")
	require.NoError(t, os.WriteFile(file, nil, 0600))

	fd, err := openConsole(file)
	assert.Equal(t, -1, fd)
	assert.Equal(t, errNotConsole, err)
}

func TestOpenConsoleMissing(t *testing.T) {
	_, err := openConsole(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestSetFontNotConsole(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "tty"))
	require.NoError(t, err)
	defer f.Close()

	c := &Console{name: f.Name(), fd: int(f.Fd())}

	font := &consolefont.Font{Width: 1, Height: 1, Data: make([]byte, consolefont.Size(1, 1))}
	assert.Error(t, c.SetFont(font))

	assert.Equal(t, consolefont.ErrBadLength, c.SetFont(&consolefont.Font{}))
	assert.NoError(t, c.Close())
}
