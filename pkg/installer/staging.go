package installer

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/fetch"
	"github.com/rstlix0x0/aiassisted/pkg/filesystem"
	"github.com/rstlix0x0/aiassisted/pkg/manifest"
)

// staging is a scratch directory beside the installed tree. It lives in the
// same parent directory so moving it into place is a rename.
type staging struct {
	fsys   filesystem.FS
	dir    string
	logger zerolog.Logger
}

func newStaging(fsys filesystem.FS, parent string, logger zerolog.Logger) (*staging, error) {
	if err := fsys.MkdirAll(parent, dirPerm); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to create %s", parent).
			WithDetail("path", parent)
	}
	dir, err := fsys.MkdirTemp(parent, stagingPrefix)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to create staging directory in %s", parent).
			WithDetail("path", parent)
	}
	logger.Debug().Str("staging", dir).Msg("Created staging directory")
	return &staging{fsys: fsys, dir: dir, logger: logger}, nil
}

// path maps a manifest-relative path into the staging directory
func (s *staging) path(relPath string) string {
	return filepath.Join(s.dir, filepath.FromSlash(relPath))
}

func (s *staging) write(relPath string, data []byte) error {
	full := s.path(relPath)
	if err := s.fsys.MkdirAll(filepath.Dir(full), dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to create directory for %s", relPath).
			WithDetail("path", relPath)
	}
	if err := s.fsys.WriteFile(full, data, filePerm); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to stage %s", relPath).
			WithDetail("path", relPath)
	}
	return nil
}

// fetchVerified downloads relPath into staging and checks it against digest.
func (s *staging) fetchVerified(ctx context.Context, fetcher fetch.Fetcher, source *fetch.Source, relPath, digest string) error {
	if err := errors.Cancelled(ctx); err != nil {
		return err
	}

	data, err := fetcher.FetchBytes(ctx, source.FileURL(relPath))
	if err != nil {
		return err
	}
	if err := s.write(relPath, data); err != nil {
		return err
	}

	actual, err := manifest.ComputeHash(s.fsys, s.path(relPath))
	if err != nil {
		return err
	}
	if !strings.EqualFold(actual, digest) {
		return errors.Newf(errors.ErrChecksumMismatch, "checksum mismatch for %s", relPath).
			WithDetail("path", relPath).
			WithDetail("expected", digest).
			WithDetail("actual", actual)
	}

	s.logger.Debug().Str("path", relPath).Msg("Verified checksum")
	return nil
}

// cleanup removes whatever is left of the staging directory
func (s *staging) cleanup() {
	if err := s.fsys.RemoveAll(s.dir); err != nil {
		s.logger.Warn().Err(err).Str("staging", s.dir).Msg("Failed to remove staging directory")
	}
}
