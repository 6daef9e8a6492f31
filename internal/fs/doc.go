// Package fs abstracts the file system operations the local blob store
// depends on, so tests can inject I/O failures deterministically.
package fs
