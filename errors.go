package facestore

import "errors"

var (
	// ErrNotFound is returned when a requested reference face exists neither
	// in memory nor in the backing store.
	ErrNotFound = errors.New("reference face not found")

	// ErrNoFaceDetected is returned when Add receives zero vectors, or when
	// the configured detector finds no faces in an image.
	ErrNoFaceDetected = errors.New("no faces detected")

	// ErrNoDetector is returned by AddImage when no detector is configured.
	ErrNoDetector = errors.New("no detector configured")
)
