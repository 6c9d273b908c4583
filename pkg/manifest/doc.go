// Package manifest handles FILES.txt, the list of every file in the remote
// tree paired with its SHA-256 digest.
//
// A manifest is parsed leniently: blank lines, comments and malformed
// entries are skipped one line at a time, so a single bad line never
// rejects the whole file. Only failing to read the file at all is an error.
//
// Comparing a local manifest against a remote one partitions the remote
// paths into changed and unchanged sets, which drives selective updates.
package manifest
