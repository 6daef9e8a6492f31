package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/facestore/model"
)

// LZ4 wraps the binary payload in an lz4 frame. Faster than zstd at a
// lower compression ratio.
type LZ4 struct{}

// Marshal encodes the vectors and compresses the payload.
func (LZ4) Marshal(vectors []model.Vector) ([]byte, error) {
	var compressed bytes.Buffer
	w := lz4.NewWriter(&compressed)
	if _, err := w.Write(encodePayload(vectors)); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	buf := appendHeader(make([]byte, 0, headerSize+compressed.Len()), compressionLZ4)
	return append(buf, compressed.Bytes()...), nil
}

// Unmarshal decodes a buffer written by LZ4.
func (l LZ4) Unmarshal(data []byte) ([]model.Vector, error) {
	compression, payload, err := readHeader(data)
	if err != nil {
		return nil, err
	}
	if compression != compressionLZ4 {
		return nil, fmt.Errorf("%w: expected lz4 payload, got 0x%02x", ErrUnknownCompression, compression)
	}
	return l.unmarshalPayload(payload)
}

// Name returns the unique name of the codec ("binary+lz4").
func (LZ4) Name() string { return "binary+lz4" }

func (LZ4) unmarshalPayload(payload []byte) ([]model.Vector, error) {
	raw, err := io.ReadAll(lz4.NewReader(bytes.NewReader(payload)))
	if err != nil {
		return nil, fmt.Errorf("%w: lz4 decompression failed: %w", ErrCorruptData, err)
	}
	return decodePayload(raw)
}
