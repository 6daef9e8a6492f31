package model

import "fmt"

// Vector is a single face embedding produced by a detector.
// It is treated as immutable once created.
type Vector []float32

// Dim returns the dimensionality of the vector.
func (v Vector) Dim() int { return len(v) }

// Clone returns a deep copy of the vector.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// CloneVectors returns a deep copy of a vector sequence.
// Order is preserved.
func CloneVectors(vectors []Vector) []Vector {
	if vectors == nil {
		return nil
	}
	out := make([]Vector, len(vectors))
	for i, v := range vectors {
		out[i] = v.Clone()
	}
	return out
}

// Record represents a named reference: one name mapped to the ordered
// sequence of embeddings detected for it. A record may hold multiple
// vectors when the source image contained multiple faces.
type Record struct {
	Name    string
	Vectors []Vector
}

// String returns a string representation of the Record.
func (r Record) String() string {
	return fmt.Sprintf("Record(%s:%d)", r.Name, len(r.Vectors))
}
