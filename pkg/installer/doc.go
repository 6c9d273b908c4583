// Package installer installs and updates the .aiassisted tree in a project.
//
// Both operations assemble everything they need in a staging directory next
// to the installed tree before touching it:
//
//   - Install fetches the whole remote tree, verifies every file against the
//     manifest and swaps the staging directory into place.
//   - Update fetches the remote manifest, diffs it against the local one,
//     fetches and verifies only the changed files, optionally asks for
//     confirmation, then writes the changed files, the manifest and finally
//     the version marker.
//
// Any fetch or verification failure aborts before the installed tree is
// modified. Files that exist locally but are no longer listed remotely are
// left alone.
package installer
