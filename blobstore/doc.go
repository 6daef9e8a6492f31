// Package blobstore provides the durable backing layer for facestore's
// embedding records.
//
// BlobStore is the interface for reading and writing whole record blobs,
// one blob per sanitized reference name. Implementations must be safe for
// concurrent use and must make Put atomic per name: a reader never observes
// a partially written blob.
//
// # Built-in Implementations
//
//   - LocalStore: One file per blob under a root directory, mmap reads,
//     write-to-temp-then-rename writes
//   - MemoryStore: Map-backed store for tests
//   - sqlite.Store: Single-table SQLite database (subpackage)
package blobstore
