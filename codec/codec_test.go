package codec

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/facestore/model"
)

func testVectors() []model.Vector {
	return []model.Vector{
		{0.1, -0.2, 0.3, 42.0},
		{1.5, 2.5, 3.5, -4.5},
		{0, 0, 0, 0},
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	codecs := []Codec{Binary{}, Zstd{}, LZ4{}}

	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			// 1. Non-empty sequence
			in := testVectors()
			data, err := c.Marshal(in)
			require.NoError(t, err)

			out, err := c.Unmarshal(data)
			require.NoError(t, err)
			require.Equal(t, in, out)

			// 2. Empty sequence
			data, err = c.Marshal(nil)
			require.NoError(t, err)

			out, err = c.Unmarshal(data)
			require.NoError(t, err)
			assert.Empty(t, out)

			// 3. Zero-dimension vector survives
			data, err = c.Marshal([]model.Vector{{}})
			require.NoError(t, err)

			out, err = c.Unmarshal(data)
			require.NoError(t, err)
			require.Len(t, out, 1)
			assert.Empty(t, out[0])
		})
	}
}

func TestCodec_SelfDescribing(t *testing.T) {
	// Package-level Unmarshal decodes buffers from any built-in codec.
	in := testVectors()
	for _, c := range []Codec{Binary{}, Zstd{}, LZ4{}} {
		data := MustMarshal(c, in)

		out, err := Unmarshal(data)
		require.NoError(t, err, "codec %s", c.Name())
		assert.Equal(t, in, out, "codec %s", c.Name())
	}
}

func TestCodec_ByName(t *testing.T) {
	for _, name := range []string{"binary", "binary+zstd", "binary+lz4"} {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("protobuf")
	assert.False(t, ok)
}

func TestBinary_Corrupt(t *testing.T) {
	valid := MustMarshal(Binary{}, testVectors())

	t.Run("short buffer", func(t *testing.T) {
		_, err := Binary{}.Unmarshal(valid[:5])
		assert.ErrorIs(t, err, ErrCorruptData)
	})

	t.Run("bad magic", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		binary.LittleEndian.PutUint32(data[0:4], 0xdeadbeef)
		_, err := Binary{}.Unmarshal(data)
		assert.ErrorIs(t, err, ErrInvalidMagic)
	})

	t.Run("bad version", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		binary.LittleEndian.PutUint32(data[4:8], 0x00ff00ff)
		_, err := Binary{}.Unmarshal(data)
		assert.ErrorIs(t, err, ErrInvalidVersion)
	})

	t.Run("unknown compression", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[8] = 0x7f
		_, err := Unmarshal(data)
		assert.ErrorIs(t, err, ErrUnknownCompression)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := Binary{}.Unmarshal(valid[:len(valid)-3])
		assert.ErrorIs(t, err, ErrCorruptData)
	})

	t.Run("missing count", func(t *testing.T) {
		_, err := Binary{}.Unmarshal(valid[:headerSize])
		assert.ErrorIs(t, err, ErrCorruptData)
	})

	t.Run("count exceeds payload", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		binary.LittleEndian.PutUint32(data[headerSize:], 1<<30)
		_, err := Binary{}.Unmarshal(data)
		assert.ErrorIs(t, err, ErrCorruptData)
	})

	t.Run("dimension overruns buffer", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		// First vector's dim field sits right after the count.
		binary.LittleEndian.PutUint32(data[headerSize+4:], 1<<20)
		_, err := Binary{}.Unmarshal(data)
		assert.ErrorIs(t, err, ErrCorruptData)
	})

	t.Run("trailing garbage", func(t *testing.T) {
		data := append(append([]byte(nil), valid...), 0x00, 0x01)
		_, err := Binary{}.Unmarshal(data)
		assert.ErrorIs(t, err, ErrCorruptData)
	})

	t.Run("compressed garbage", func(t *testing.T) {
		data := appendHeader(nil, compressionZstd)
		data = append(data, []byte("not a zstd frame")...)
		_, err := Unmarshal(data)
		assert.ErrorIs(t, err, ErrCorruptData)
	})
}
