package codec

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/facestore/model"
)

// Zstd wraps the binary payload in zstd compression.
//
// Worthwhile for large records (many faces, high-dimensional embeddings);
// for a handful of 512-dim vectors the binary codec is usually smaller
// end-to-end once the frame overhead is paid.
type Zstd struct{}

// Marshal encodes the vectors and compresses the payload.
func (Zstd) Marshal(vectors []model.Vector) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	defer enc.Close()

	payload := encodePayload(vectors)
	buf := appendHeader(make([]byte, 0, headerSize), compressionZstd)
	return enc.EncodeAll(payload, buf), nil
}

// Unmarshal decodes a buffer written by Zstd.
func (z Zstd) Unmarshal(data []byte) ([]model.Vector, error) {
	compression, payload, err := readHeader(data)
	if err != nil {
		return nil, err
	}
	if compression != compressionZstd {
		return nil, fmt.Errorf("%w: expected zstd payload, got 0x%02x", ErrUnknownCompression, compression)
	}
	return z.unmarshalPayload(payload)
}

// Name returns the unique name of the codec ("binary+zstd").
func (Zstd) Name() string { return "binary+zstd" }

func (Zstd) unmarshalPayload(payload []byte) ([]model.Vector, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(payload, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd decompression failed: %w", ErrCorruptData, err)
	}
	return decodePayload(raw)
}
