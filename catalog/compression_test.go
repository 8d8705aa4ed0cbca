package catalog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressionRoundTrip(t *testing.T) {
	data := readTestdata(t, "guide.json")

	for _, c := range []Compression{CompressionNone, CompressionZSTD, CompressionLZ4} {
		t.Run(string(c), func(t *testing.T) {
			packed, err := Compress(data, c)
			require.NoError(t, err)
			assert.Equal(t, c, DetectCompression(packed))
			if c != CompressionNone {
				assert.Less(t, len(packed), len(data))
			}

			plain, err := Decompress(packed)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(data, plain))

			cat, err := Parse(packed)
			require.NoError(t, err)
			assert.Equal(t, 3, cat.Len())
		})
	}
}

func TestParseCompression(t *testing.T) {
	c, err := ParseCompression("")
	require.NoError(t, err)
	assert.Equal(t, CompressionNone, c)

	c, err = ParseCompression("zstd")
	require.NoError(t, err)
	assert.Equal(t, CompressionZSTD, c)

	_, err = ParseCompression("brotli")
	assert.Error(t, err)

	_, err = Compress(nil, Compression("brotli"))
	assert.Error(t, err)
}

func TestDecompressCorrupt(t *testing.T) {
	_, err := Decompress(append([]byte{0x28, 0xB5, 0x2F, 0xFD}, 0xFF, 0xFF, 0xFF))
	assert.Error(t, err)
}
