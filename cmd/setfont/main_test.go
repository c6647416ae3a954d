package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/setfont"
	"github.com/bodgit/setfont/consolefont"
	"github.com/bodgit/setfont/pnm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

type fakeDevice struct {
	font *consolefont.Font
	err  error
}

func (d *fakeDevice) SetFont(f *consolefont.Font) error {
	if d.err != nil {
		return d.err
	}
	d.font = f
	return nil
}

func (d *fakeDevice) Close() error {
	return nil
}

// run executes the app with args and returns the exit code and whatever was
// written to stderr.
func run(t *testing.T, open setfont.OpenFunc, args ...string) (int, string) {
	stderr := new(bytes.Buffer)
	code := 0

	errWriter, osExiter := cli.ErrWriter, cli.OsExiter
	defer func() {
		cli.ErrWriter, cli.OsExiter = errWriter, osExiter
	}()
	cli.ErrWriter = stderr
	cli.OsExiter = func(c int) {
		code = c
	}

	app := newApp(open, filepath.Join(t.TempDir(), defaultDB))
	app.Writer = ioutil.Discard
	app.ErrWriter = stderr
	app.Run(append([]string{"setfont"}, args...))

	return code, stderr.String()
}

func writeSheet(t *testing.T, width, height int) string {
	b := new(bytes.Buffer)
	require.NoError(t, pnm.Encode(b, pnm.New(width, height, 255)))

	file := filepath.Join(t.TempDir(), "sheet.pnm")
	require.NoError(t, os.WriteFile(file, b.Bytes(), 0644))

	return file
}

func TestInstall(t *testing.T) {
	dev := new(fakeDevice)

	code, stderr := run(t, func() (setfont.Device, error) { return dev, nil }, writeSheet(t, 64, 16))

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	require.NotNil(t, dev.font)
	assert.Equal(t, 2, dev.font.Width)
}

func TestWrongArgumentCount(t *testing.T) {
	open := func() (setfont.Device, error) {
		t.Fatal("console opened")
		return nil, nil
	}

	for _, args := range [][]string{{}, {"a.pnm", "b.pnm"}} {
		code, stderr := run(t, open, args...)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "Use: setfont path-to-glyph-sheet.pnm")
	}
}

func TestLoadFailure(t *testing.T) {
	open := func() (setfont.Device, error) {
		t.Fatal("console opened")
		return nil, nil
	}

	code, stderr := run(t, open, filepath.Join(t.TempDir(), "missing.pnm"))

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Could not load glyph sheet")
}

func TestDeviceFailure(t *testing.T) {
	tests := []struct {
		name string
		open setfont.OpenFunc
	}{
		{"no console", func() (setfont.Device, error) { return nil, errors.New("no console") }},
		{"set font", func() (setfont.Device, error) { return &fakeDevice{err: errors.New("ioctl failed")}, nil }},
	}

	for _, table := range tests {
		t.Run(table.name, func(t *testing.T) {
			code, stderr := run(t, table.open, writeSheet(t, 32, 8))

			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, "Could not install font")
			assert.NotContains(t, stderr, "Could not load glyph sheet")
		})
	}
}
