// Package codec centralizes the serialized embedding format.
//
// Facestore intentionally treats codec selection as a breaking-change boundary:
// if you change codecs, persisted bytes created by older codecs may no longer encode
// the same way. Every buffer carries a self-describing header, so decoding never
// needs out-of-band configuration.
package codec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/facestore/model"
)

var (
	// ErrInvalidMagic is returned when a buffer does not start with the format magic.
	ErrInvalidMagic = errors.New("invalid magic number")

	// ErrInvalidVersion is returned when a buffer was written by an unsupported format version.
	ErrInvalidVersion = errors.New("unsupported version")

	// ErrCorruptData is returned when a buffer's structural markers are inconsistent
	// (truncated payload, vector length overrunning the buffer, trailing garbage).
	ErrCorruptData = errors.New("corrupt embedding data")

	// ErrUnknownCompression is returned when the header names a compression scheme
	// this build does not know.
	ErrUnknownCompression = errors.New("unknown compression scheme")
)

// Codec encodes/decodes a sequence of embedding vectors.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(vectors []model.Vector) ([]byte, error)
	Unmarshal(data []byte) ([]model.Vector, error)
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// This is used by configuration surfaces that select the write codec; reads
// never need it because buffers are self-describing.
func ByName(name string) (Codec, bool) {
	switch name {
	case "binary":
		return Binary{}, true
	case "binary+zstd":
		return Zstd{}, true
	case "binary+lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// Unmarshal decodes a buffer written by any built-in codec, dispatching on the
// compression byte in the header.
func Unmarshal(data []byte) ([]model.Vector, error) {
	compression, payload, err := readHeader(data)
	if err != nil {
		return nil, err
	}
	switch compression {
	case compressionNone:
		return decodePayload(payload)
	case compressionZstd:
		return Zstd{}.unmarshalPayload(payload)
	case compressionLZ4:
		return LZ4{}.unmarshalPayload(payload)
	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownCompression, compression)
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, vectors []model.Vector) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(vectors)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

// Default is the default codec used by the library.
//
// NOTE: This affects newly-written blobs only. Existing persisted files are
// self-describing and decode regardless of the configured write codec.
var Default Codec = Binary{}
