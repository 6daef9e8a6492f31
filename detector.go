package facestore

import (
	"context"
	"image"

	"github.com/hupe1980/facestore/model"
)

// Detector extracts face embeddings from an image.
//
// A detector returning an empty slice is not an error at this boundary;
// the store rejects the empty result with ErrNoFaceDetected when adding.
// Implementations must be safe for concurrent use.
type Detector interface {
	Detect(ctx context.Context, img image.Image) ([]model.Vector, error)
}

// DetectorFunc adapts a plain function to the Detector interface.
type DetectorFunc func(ctx context.Context, img image.Image) ([]model.Vector, error)

// Detect calls f.
func (f DetectorFunc) Detect(ctx context.Context, img image.Image) ([]model.Vector, error) {
	return f(ctx, img)
}
