package installer

import (
	"context"
	"path"

	"github.com/rs/zerolog"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/fetch"
	"github.com/rstlix0x0/aiassisted/pkg/filesystem"
	"github.com/rstlix0x0/aiassisted/pkg/manifest"
	"github.com/rstlix0x0/aiassisted/pkg/marker"
	"github.com/rstlix0x0/aiassisted/pkg/paths"
)

// DefaultPreviewLines caps the diff shown before an update is applied
const DefaultPreviewLines = 100

const (
	stagingPrefix = paths.InstallDirName + "-staging-"
	oldTreePrefix = paths.InstallDirName + ".old-"

	filePerm = 0644
	dirPerm  = 0755
)

// Confirmer decides whether a non-forced update is applied. preview is nil
// when it could not be generated.
type Confirmer interface {
	Confirm(ctx context.Context, preview *Preview) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(ctx context.Context, preview *Preview) (bool, error)

// Confirm calls f
func (f ConfirmFunc) Confirm(ctx context.Context, preview *Preview) (bool, error) {
	return f(ctx, preview)
}

// Installer drives install, update, check and verify against one remote source.
type Installer struct {
	fetcher      fetch.Fetcher
	source       *fetch.Source
	fsys         filesystem.FS
	logger       zerolog.Logger
	previewLines int
}

// Option configures an Installer
type Option func(*Installer)

// WithFS sets the filesystem. Defaults to the OS filesystem.
func WithFS(fsys filesystem.FS) Option {
	return func(i *Installer) {
		if fsys != nil {
			i.fsys = fsys
		}
	}
}

// WithLogger sets the logger
func WithLogger(l zerolog.Logger) Option {
	return func(i *Installer) {
		i.logger = l
	}
}

// WithPreviewLines caps the update preview. Negative values are ignored.
func WithPreviewLines(n int) Option {
	return func(i *Installer) {
		if n >= 0 {
			i.previewLines = n
		}
	}
}

// New creates an Installer fetching from source through fetcher.
func New(fetcher fetch.Fetcher, source *fetch.Source, opts ...Option) *Installer {
	i := &Installer{
		fetcher:      fetcher,
		source:       source,
		fsys:         filesystem.NewOS(),
		logger:       zerolog.Nop(),
		previewLines: DefaultPreviewLines,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// remoteVersion fetches the remote marker text and its identity
func (i *Installer) remoteVersion(ctx context.Context) ([]byte, string, bool, error) {
	data, err := i.fetcher.FetchBytes(ctx, i.source.VersionURL())
	if err != nil {
		return nil, "", false, err
	}
	value, found := marker.Parse(string(data), marker.IdentityKey)
	return data, value, found, nil
}

// checkReserved rejects a remote manifest that lists the tree's own manifest
// or version marker. Both are rewritten by install and update, so such an
// entry could never match its digest afterwards.
func (i *Installer) checkReserved(remote *manifest.Manifest) error {
	for _, p := range remote.Paths() {
		switch path.Clean(p) {
		case paths.ManifestFileName, paths.VersionFileName:
			return errors.Newf(errors.ErrParse, "remote manifest lists reserved file %s", p).
				WithDetail("path", p).
				WithDetail("url", i.source.ManifestURL())
		}
	}
	return nil
}

func (i *Installer) layout(target string) (paths.Paths, error) {
	return paths.New(target)
}
