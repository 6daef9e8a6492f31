// Package sqlite implements blobstore.BlobStore on a single SQLite table.
//
// Useful when record files should live inside one database file instead of
// a directory tree, e.g. to ship a reference set as a single artifact. Uses
// the pure-Go modernc.org/sqlite driver, so no cgo is required.
package sqlite
