// Package util provides helpers for tests and benchmarks.
package util

import (
	"math/rand"

	"github.com/hupe1980/facestore/model"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateRandomVectors generates random embeddings using the given RNG.
func (r *RNG) GenerateRandomVectors(num int, dimensions int) []model.Vector {
	vectors := make([]model.Vector, num)
	for i := range vectors {
		vectors[i] = make(model.Vector, dimensions)
		for j := range vectors[i] {
			vectors[i][j] = r.rand.Float32()
		}
	}

	return vectors
}
