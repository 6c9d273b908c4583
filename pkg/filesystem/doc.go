// Package filesystem provides filesystem implementations for aiassisted.
//
// This package defines the FS interface the manifest and installer packages
// work against. The OS filesystem used for real runs and the in-memory one
// used by tests are both afero filesystems behind the same adapter.
//
// It also carries the small helpers the installer builds on: atomic file
// replacement and file copies.
package filesystem
