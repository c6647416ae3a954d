package pnm

import (
	"bufio"
	"image"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
)

// A FormatError reports that the input is not a valid P6 image.
type FormatError string

func (e FormatError) Error() string {
	return "pnm: " + string(e)
}

var (
	errFingerprint   = FormatError("not the expected format")
	errBadDimensions = FormatError("bad dimensions")
	errBadMaxValue   = FormatError("bad maxval")
	errPrematureEOF  = FormatError("premature end of file")
	errTruncated     = FormatError("truncated pixel data")
)

// parseFields parses line as exactly n whitespace separated positive
// integers that fit in 16 bits.
func parseFields(line string, n int) ([]int, bool) {
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, false
	}
	v := make([]int, n)
	for i, f := range fields {
		u, err := strconv.ParseUint(f, 10, 16)
		if err != nil || u == 0 {
			return nil, false
		}
		v[i] = int(u)
	}
	return v, true
}

// A stateFn consumes one header line and returns the next state, or nil
// once the header is complete.
type stateFn func(*decoder, string) (stateFn, error)

func awaitFingerprint(d *decoder, line string) (stateFn, error) {
	if line != fingerprint+"\n" {
		return nil, errFingerprint
	}
	return awaitDimensions, nil
}

func awaitDimensions(d *decoder, line string) (stateFn, error) {
	if line[0] == commentMarker {
		return awaitDimensions, nil
	}
	v, ok := parseFields(line, 2)
	if !ok {
		return nil, errBadDimensions
	}
	d.width, d.height = v[0], v[1]
	return awaitMaxValue, nil
}

// A maxval of zero is rejected along with anything that is not a number;
// there is no channel value range for it to describe.
func awaitMaxValue(d *decoder, line string) (stateFn, error) {
	v, ok := parseFields(line, 1)
	if !ok {
		return nil, errBadMaxValue
	}
	d.maxValue = v[0]
	return nil, nil
}

type decoder struct {
	r *bufio.Reader

	width, height int
	maxValue      int

	image *Image
}

func (d *decoder) readLine() (string, error) {
	line, err := d.r.ReadString('\n')
	switch err {
	case nil:
		return line, nil
	case io.EOF:
		return "", errPrematureEOF
	default:
		return "", err
	}
}

func (d *decoder) readHeader() error {
	state := stateFn(awaitFingerprint)
	for state != nil {
		line, err := d.readLine()
		if err != nil {
			return err
		}
		if state, err = state(d, line); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = bufio.NewReader(r)

	if err := d.readHeader(); err != nil {
		return err
	}

	if configOnly {
		return nil
	}

	// Grow with the data actually present rather than trusting the header
	n := int64(channels) * int64(d.width) * int64(d.height)
	pix, err := io.ReadAll(io.LimitReader(d.r, n))
	if err != nil {
		return err
	}
	if int64(len(pix)) != n {
		return errTruncated
	}

	d.image = &Image{
		Width:    d.width,
		Height:   d.height,
		MaxValue: d.maxValue,
		Pix:      pix,
	}

	return nil
}

// DecodeImage reads a P6 image from r. Either the complete image is returned
// or an error, never a partially filled image.
func DecodeImage(r io.Reader) (*Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// Decode reads a P6 image from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	m, err := DecodeImage(r)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeConfig returns the color model and dimensions of a P6 image without
// reading the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.RGBAModel,
		Width:      d.width,
		Height:     d.height,
	}, nil
}

// Load decodes the P6 image stored in file. Errors opening or reading the
// file are returned unchanged.
func Load(file string) (*Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeImage(f)
}
