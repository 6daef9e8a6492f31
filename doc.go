// Package facestore provides a named face-embedding store for Go.
//
// Facestore manages reference faces: numeric embedding vectors identified by
// user-chosen names. Lookups are served from an in-memory index and fall back
// to a durable backing store (a directory of files, or any custom
// blobstore.BlobStore), so a process can lazily page in only the references
// it actually uses.
//
// # Quick Start
//
//	ctx := context.Background()
//	store := facestore.New("./embeddings")
//
//	// Register a reference face from pre-extracted embeddings.
//	key, _, err := store.Add(ctx, "Grace Hopper", vectors, true)
//
//	// Later (or in a fresh process) load it back.
//	faces, err := store.Get(ctx, "Grace Hopper")
//
//	// Bulk-load everything that was persisted.
//	all, err := store.LoadAll(ctx)
//
// # Detection
//
// Embedding extraction is pluggable. Wire any face detector through the
// Detector interface and add references straight from images:
//
//	store := facestore.New("./embeddings", facestore.WithDetector(det))
//	key, _, err := store.AddImage(ctx, "Grace Hopper", img, true)
//
// # Durability Model
//
// Add with persist=false keeps the reference in memory only. With
// persist=true the encoded record is written atomically (temp file + rename),
// so concurrent readers never observe partial writes. The store itself never
// deletes; removing a persisted reference is an external operation.
package facestore
