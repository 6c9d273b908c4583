// Package testutil provides utilities for testing aiassisted components.
//
// Key components:
//   - File helpers: create, read and snapshot directory trees on disk
//   - RemoteTree: an httptest server that serves a .aiassisted tree the way
//     the upstream source does, with hooks to corrupt files or fail requests
//
// Usage guidelines:
//   - Use t.TempDir for anything that touches the real filesystem
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
