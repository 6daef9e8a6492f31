package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/facestore/model"
)

const (
	// magicNumber identifies facestore embedding buffers (ASCII: "FAC1").
	magicNumber = 0x46414331
	// version is the current format version.
	version = 0x00000001

	// headerSize is magic (4) + version (4) + compression (1).
	headerSize = 9

	compressionNone = 0x00
	compressionZstd = 0x01
	compressionLZ4  = 0x02
)

// Binary is the uncompressed little-endian codec.
//
// Layout:
//
//	[Magic: 4 bytes] [Version: 4 bytes] [Compression: 1 byte]
//	[Count: 4 bytes]
//	per vector: [Dim: 4 bytes] [Dim * float32]
//
// An empty vector sequence encodes to a header plus a zero count.
type Binary struct{}

// Marshal encodes the vectors into a self-describing buffer.
func (Binary) Marshal(vectors []model.Vector) ([]byte, error) {
	payload := encodePayload(vectors)
	buf := make([]byte, 0, headerSize+len(payload))
	buf = appendHeader(buf, compressionNone)
	return append(buf, payload...), nil
}

// Unmarshal decodes a buffer written by Binary.
func (Binary) Unmarshal(data []byte) ([]model.Vector, error) {
	compression, payload, err := readHeader(data)
	if err != nil {
		return nil, err
	}
	if compression != compressionNone {
		return nil, fmt.Errorf("%w: expected uncompressed payload, got 0x%02x", ErrUnknownCompression, compression)
	}
	return decodePayload(payload)
}

// Name returns the unique name of the codec ("binary").
func (Binary) Name() string { return "binary" }

func appendHeader(buf []byte, compression byte) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, magicNumber)
	buf = binary.LittleEndian.AppendUint32(buf, version)
	return append(buf, compression)
}

func readHeader(data []byte) (compression byte, payload []byte, err error) {
	if len(data) < headerSize {
		return 0, nil, fmt.Errorf("%w: buffer shorter than header (%d bytes)", ErrCorruptData, len(data))
	}
	if m := binary.LittleEndian.Uint32(data[0:4]); m != magicNumber {
		return 0, nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, m)
	}
	if v := binary.LittleEndian.Uint32(data[4:8]); v != version {
		return 0, nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, v)
	}
	return data[8], data[headerSize:], nil
}

func encodePayload(vectors []model.Vector) []byte {
	size := 4
	for _, vec := range vectors {
		size += 4 + 4*len(vec)
	}
	buf := make([]byte, 0, size)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(vectors)))
	for _, vec := range vectors {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(vec)))
		for _, f := range vec {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
		}
	}
	return buf
}

func decodePayload(payload []byte) ([]model.Vector, error) {
	if len(payload) < 4 {
		return nil, fmt.Errorf("%w: missing vector count", ErrCorruptData)
	}
	count := binary.LittleEndian.Uint32(payload[0:4])
	off := 4

	// Each vector needs at least its 4-byte length prefix; reject counts
	// that cannot possibly fit before allocating.
	if int64(count)*4 > int64(len(payload)-off) {
		return nil, fmt.Errorf("%w: vector count %d exceeds payload size", ErrCorruptData, count)
	}

	vectors := make([]model.Vector, 0, count)
	for i := uint32(0); i < count; i++ {
		if len(payload)-off < 4 {
			return nil, fmt.Errorf("%w: truncated at vector %d", ErrCorruptData, i)
		}
		dim := binary.LittleEndian.Uint32(payload[off : off+4])
		off += 4

		byteLen := int64(dim) * 4
		if byteLen > int64(len(payload)-off) {
			return nil, fmt.Errorf("%w: vector %d dimension %d overruns buffer", ErrCorruptData, i, dim)
		}
		vec := make(model.Vector, dim)
		for j := range vec {
			vec[j] = math.Float32frombits(binary.LittleEndian.Uint32(payload[off : off+4]))
			off += 4
		}
		vectors = append(vectors, vec)
	}

	if off != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing bytes after %d vectors", ErrCorruptData, len(payload)-off, count)
	}
	return vectors, nil
}
