package installer

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/filesystem"
	"github.com/rstlix0x0/aiassisted/pkg/paths"
)

// FileDiff is the preview of one changed file
type FileDiff struct {
	Path   string
	New    bool
	Binary bool
	// Diff is a unified diff, or a one-line summary for binary content
	Diff string
}

// Preview is what a user sees before confirming an update
type Preview struct {
	Files []FileDiff

	// Lines is the combined diff, cut to the configured maximum
	Lines []string
	// Omitted counts the lines dropped from Lines
	Omitted int

	// MetadataOnly is set when only the version marker changes
	MetadataOnly bool
}

// Truncated reports whether lines were omitted
func (p *Preview) Truncated() bool {
	return p.Omitted > 0
}

// buildPreview diffs each changed path, plus the version marker, between
// the installed tree and staging.
func buildPreview(fsys filesystem.FS, installDir, stagingDir string, changed []string, maxLines int) (*Preview, error) {
	p := &Preview{MetadataOnly: len(changed) == 0}

	for _, rel := range append(append([]string{}, changed...), paths.VersionFileName) {
		fd, err := diffFile(fsys, installDir, stagingDir, rel)
		if err != nil {
			return nil, err
		}
		if fd.Diff == "" {
			continue
		}
		p.Files = append(p.Files, fd)
	}

	var all []string
	for _, fd := range p.Files {
		all = append(all, strings.Split(strings.TrimRight(fd.Diff, "\n"), "\n")...)
	}
	if len(all) > maxLines {
		p.Omitted = len(all) - maxLines
		all = all[:maxLines]
	}
	p.Lines = all
	return p, nil
}

func diffFile(fsys filesystem.FS, installDir, stagingDir, rel string) (FileDiff, error) {
	fd := FileDiff{Path: rel}
	native := filepath.FromSlash(rel)

	newData, err := fsys.ReadFile(filepath.Join(stagingDir, native))
	if err != nil {
		return fd, errors.Wrapf(err, errors.ErrIO, "failed to read staged %s", rel).
			WithDetail("path", rel)
	}

	var oldData []byte
	installed := filepath.Join(installDir, native)
	if filesystem.Exists(fsys, installed) {
		oldData, err = fsys.ReadFile(installed)
		if err != nil {
			return fd, errors.Wrapf(err, errors.ErrIO, "failed to read installed %s", rel).
				WithDetail("path", rel)
		}
	} else {
		fd.New = true
	}

	fromFile, toFile := "a/"+rel, "b/"+rel
	if fd.New {
		fromFile = "/dev/null"
	}

	if isBinary(oldData) || isBinary(newData) {
		fd.Binary = true
		if !bytes.Equal(oldData, newData) {
			fd.Diff = fmt.Sprintf("Binary files %s and %s differ\n", fromFile, toFile)
		}
		return fd, nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(string(oldData)),
		B:        splitLines(string(newData)),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  3,
	})
	if err != nil {
		return fd, errors.Wrapf(err, errors.ErrInternal, "failed to diff %s", rel).
			WithDetail("path", rel)
	}
	fd.Diff = diff
	return fd, nil
}

// splitLines is difflib.SplitLines without the phantom empty line it adds
// for empty input or a trailing newline
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if last := len(lines) - 1; lines[last] == "" {
		lines = lines[:last]
	} else {
		lines[last] += "\n"
	}
	return lines
}

func isBinary(data []byte) bool {
	return bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data)
}
