package manifest

import (
	"path/filepath"

	"github.com/rstlix0x0/aiassisted/pkg/filesystem"
)

// Diff partitions a remote manifest's paths against a local one. All lists
// follow the remote manifest's order.
type Diff struct {
	// Changed holds paths absent locally or listed with another digest
	Changed []string
	// Unchanged holds paths with identical digests on both sides
	Unchanged []string

	// New and Modified split Changed for reporting
	New      []string
	Modified []string
}

// HasChanges reports whether anything needs fetching
func (d Diff) HasChanges() bool {
	return len(d.Changed) > 0
}

// CompareWith diffs the local manifest m against remote. Paths listed only
// locally are not part of the result; see LocalOnly.
func (m *Manifest) CompareWith(remote *Manifest) Diff {
	d := Diff{
		Changed:   []string{},
		Unchanged: []string{},
		New:       []string{},
		Modified:  []string{},
	}
	for _, p := range remote.order {
		remoteDigest := remote.digests[p]
		localDigest, ok := m.digests[p]
		switch {
		case !ok:
			d.Changed = append(d.Changed, p)
			d.New = append(d.New, p)
		case localDigest != remoteDigest:
			d.Changed = append(d.Changed, p)
			d.Modified = append(d.Modified, p)
		default:
			d.Unchanged = append(d.Unchanged, p)
		}
	}
	return d
}

// LocalOnly returns paths listed in m but not in remote, in m's order
func (m *Manifest) LocalOnly(remote *Manifest) []string {
	out := []string{}
	for _, p := range m.order {
		if !remote.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// TreeReport is the outcome of checking files on disk against a manifest
type TreeReport struct {
	OK         []string
	Mismatched []string
	Missing    []string
}

// Clean reports whether every listed file is present and intact
func (r TreeReport) Clean() bool {
	return len(r.Mismatched) == 0 && len(r.Missing) == 0
}

// VerifyTree checks every entry of m against the file at root/<path>.
func VerifyTree(fsys filesystem.FS, root string, m *Manifest) TreeReport {
	r := TreeReport{OK: []string{}, Mismatched: []string{}, Missing: []string{}}
	for _, e := range m.Entries() {
		full := filepath.Join(root, filepath.FromSlash(e.Path))
		if !filesystem.Exists(fsys, full) {
			r.Missing = append(r.Missing, e.Path)
			continue
		}
		if Verify(fsys, full, e.Digest) {
			r.OK = append(r.OK, e.Path)
		} else {
			r.Mismatched = append(r.Mismatched, e.Path)
		}
	}
	return r
}
