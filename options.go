package facestore

import (
	"github.com/hupe1980/facestore/blobstore"
	"github.com/hupe1980/facestore/codec"
)

type options struct {
	codec     codec.Codec
	blobs     blobstore.BlobStore
	logger    *Logger
	detector  Detector
	sanitizer Sanitizer
}

// Option configures Store constructor behavior.
type Option func(*options)

// WithCodec configures the codec used to encode newly persisted records.
// Reads are unaffected: persisted buffers are self-describing.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithBlobStore replaces the default directory-backed store with a custom
// backing store (e.g. blobstore.MemoryStore, sqlite.Store). When set, the
// directory passed to New is ignored.
func WithBlobStore(bs blobstore.BlobStore) Option {
	return func(o *options) {
		o.blobs = bs
	}
}

// WithLogger configures structured logging. Defaults to a text logger at
// info level.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithDetector wires a face detector, enabling AddImage.
func WithDetector(d Detector) Option {
	return func(o *options) {
		o.detector = d
	}
}

// WithSanitizer replaces the default name sanitizer. The function must be
// deterministic and idempotent; changing it invalidates the keys of already
// persisted records.
func WithSanitizer(s Sanitizer) Option {
	return func(o *options) {
		if s != nil {
			o.sanitizer = s
		}
	}
}
