/*
Package pnm implements a strict decoder and encoder for binary PPM images,
the "P6" variant of the portable anymap family.

The header is line oriented: the fingerprint line "P6", any number of comment
lines starting with '#', a line holding the width and height and finally a
line holding the maximum channel value. The raw pixel data follows directly
after the newline that ends the maximum value line, three bytes per pixel in
red, green, blue order, row by row from the top.
*/
package pnm

import (
	"image"
	"image/color"
)

const (
	fingerprint   = "P6"
	commentMarker = '#'
	channels      = 3
)

// Image is a decoded P6 image. Pix always holds exactly 3*Width*Height bytes.
type Image struct {
	Width, Height int
	MaxValue      int
	Pix           []byte
}

// New returns a blank image of the given size.
func New(width, height, maxValue int) *Image {
	return &Image{
		Width:    width,
		Height:   height,
		MaxValue: maxValue,
		Pix:      make([]byte, channels*width*height),
	}
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (m *Image) PixOffset(x, y int) int {
	return channels * (y*m.Width + x)
}

func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

func (m *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return color.RGBA{}
	}
	i := m.PixOffset(x, y)
	return color.RGBA{m.Pix[i+0], m.Pix[i+1], m.Pix[i+2], 0xff}
}

func init() {
	image.RegisterFormat("ppm", fingerprint, Decode, DecodeConfig)
}
