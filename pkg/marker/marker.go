// Package marker reads the .version file that identifies which snapshot of
// the remote tree is installed, and compares identities.
package marker

import (
	"strings"

	"github.com/rstlix0x0/aiassisted/pkg/filesystem"
)

// IdentityKey is the key whose value identifies a snapshot
const IdentityKey = "COMMIT_HASH"

// UnknownVersion is shown when no local identity can be read
const UnknownVersion = "unknown"

// Parse returns the value of the first line starting with key=. The value
// is everything after the first '=' on that line, taken verbatim.
func Parse(text, key string) (string, bool) {
	prefix := key + "="
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, prefix) {
			return line[len(prefix):], true
		}
	}
	return "", false
}

// ReadFile parses the marker file at path. A missing or unreadable file is
// reported as not found.
func ReadFile(fsys filesystem.FS, path, key string) (string, bool) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", false
	}
	return Parse(string(data), key)
}

// Display returns the value, or "unknown" when it was not found
func Display(value string, found bool) string {
	if !found {
		return UnknownVersion
	}
	return value
}

// State is the outcome of comparing local and remote identities. The zero
// value is Unknown.
type State int

const (
	// Unknown means one of the identities could not be read
	Unknown State = iota
	// UpToDate means both identities are equal
	UpToDate
	// Outdated means the local identity differs from the remote one
	Outdated
)

func (s State) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case UpToDate:
		return "up-to-date"
	case Outdated:
		return "outdated"
	default:
		return "invalid"
	}
}

// NeedsUpdate reports whether an update is recommended
func (s State) NeedsUpdate() bool {
	return s != UpToDate
}

// Compare classifies identities. There is no ordering between versions,
// only equality.
func Compare(local string, localKnown bool, remote string, remoteKnown bool) State {
	switch {
	case !localKnown || !remoteKnown:
		return Unknown
	case local == remote:
		return UpToDate
	default:
		return Outdated
	}
}
