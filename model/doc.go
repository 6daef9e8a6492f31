// Package model defines core types used throughout facestore.
//
// # Data Types
//
//   - Vector: One face embedding (float32 slice)
//   - Record: A reference name paired with its detected embeddings
package model
