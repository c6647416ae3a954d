package pnm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	m := New(2, 2, 255)
	for i := range m.Pix {
		m.Pix[i] = byte(i)
	}

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))

	assert.Equal(t, "P6\n2 2\n255\n", b.String()[:len("P6\n2 2\n255\n")])

	dup, err := DecodeImage(b)
	require.NoError(t, err)
	assert.Equal(t, m, dup)
}

func TestEncodeInvalid(t *testing.T) {
	b := new(bytes.Buffer)

	assert.Error(t, Encode(b, &Image{Width: 0, Height: 1, MaxValue: 255}))
	assert.Error(t, Encode(b, &Image{Width: 1, Height: 1, MaxValue: 0, Pix: make([]byte, 3)}))
	assert.Error(t, Encode(b, &Image{Width: 1, Height: 1, MaxValue: 255, Pix: make([]byte, 2)}))
	assert.Zero(t, b.Len())
}
