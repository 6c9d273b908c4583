package installer

import (
	"context"
	"path/filepath"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/filesystem"
	"github.com/rstlix0x0/aiassisted/pkg/logging"
	"github.com/rstlix0x0/aiassisted/pkg/manifest"
	"github.com/rstlix0x0/aiassisted/pkg/marker"
	"github.com/rstlix0x0/aiassisted/pkg/paths"
)

// InstallResult describes a completed install
type InstallResult struct {
	InstallDir   string
	Version      string
	VersionKnown bool
	Files        int
}

// Status describes an installed tree before anything is changed
type Status struct {
	InstallDir string
	Installed  bool

	Local       string
	LocalKnown  bool
	Remote      string
	RemoteKnown bool

	// State stays Unknown unless a tree is installed and both identities
	// were read
	State marker.State
}

// Status inspects target and, when a tree is installed, compares its
// version marker against the remote one.
func (i *Installer) Status(ctx context.Context, target string) (*Status, error) {
	layout, err := i.layout(target)
	if err != nil {
		return nil, err
	}

	st := &Status{InstallDir: layout.InstallDir()}
	if !filesystem.IsDir(i.fsys, layout.InstallDir()) {
		return st, nil
	}
	st.Installed = true
	st.Local, st.LocalKnown = marker.ReadFile(i.fsys, layout.VersionFile(), marker.IdentityKey)

	_, remote, found, err := i.remoteVersion(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		i.logger.Warn().Str("url", i.source.VersionURL()).Msgf("Remote version marker has no %s", marker.IdentityKey)
	}
	st.Remote, st.RemoteKnown = remote, found
	st.State = marker.Compare(st.Local, st.LocalKnown, remote, found)
	return st, nil
}

// Install fetches the complete remote tree into staging, verifies every
// file, and only then replaces <target>/.aiassisted with it. Any failure
// leaves an existing tree untouched.
func (i *Installer) Install(ctx context.Context, target string) (*InstallResult, error) {
	done := logging.LogOperationStart(i.logger, "install")
	defer done()

	layout, err := i.layout(target)
	if err != nil {
		return nil, err
	}

	stage, err := newStaging(i.fsys, layout.TargetDir(), i.logger)
	if err != nil {
		return nil, err
	}
	defer stage.cleanup()

	versionData, version, versionKnown, err := i.remoteVersion(ctx)
	if err != nil {
		return nil, err
	}
	if err := stage.write(paths.VersionFileName, versionData); err != nil {
		return nil, err
	}

	manifestText, err := i.fetcher.FetchText(ctx, i.source.ManifestURL())
	if err != nil {
		return nil, err
	}
	remote := manifest.Parse(manifestText)
	if err := i.checkReserved(remote); err != nil {
		return nil, err
	}
	i.logger.Info().Int("files", remote.Len()).Msg("Fetched remote manifest")

	for _, entry := range remote.Entries() {
		if err := stage.fetchVerified(ctx, i.fetcher, i.source, entry.Path, entry.Digest); err != nil {
			return nil, err
		}
	}

	if err := stage.write(paths.ManifestFileName, []byte(manifestText)); err != nil {
		return nil, err
	}
	if err := errors.Cancelled(ctx); err != nil {
		return nil, err
	}

	if err := i.swapIn(stage.dir, layout.InstallDir()); err != nil {
		return nil, err
	}

	i.logger.Info().
		Str("dir", layout.InstallDir()).
		Str("version", marker.Display(version, versionKnown)).
		Int("files", remote.Len()).
		Msg("Installed")

	return &InstallResult{
		InstallDir:   layout.InstallDir(),
		Version:      version,
		VersionKnown: versionKnown,
		Files:        remote.Len(),
	}, nil
}

// swapIn replaces installDir with stagedDir. An existing tree is moved
// aside first and moved back if the final rename fails.
func (i *Installer) swapIn(stagedDir, installDir string) error {
	parent := filepath.Dir(installDir)

	// MkdirTemp creates 0700 directories
	if err := i.fsys.Chmod(stagedDir, dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to set permissions on %s", stagedDir).
			WithDetail("path", stagedDir)
	}

	var oldDir string
	if filesystem.Exists(i.fsys, installDir) {
		reserved, err := i.fsys.MkdirTemp(parent, oldTreePrefix)
		if err != nil {
			return errors.Wrap(err, errors.ErrIO, "failed to reserve backup location").
				WithDetail("path", parent)
		}
		if err := i.fsys.Remove(reserved); err != nil {
			return errors.Wrap(err, errors.ErrIO, "failed to reserve backup location").
				WithDetail("path", reserved)
		}
		if err := i.fsys.Rename(installDir, reserved); err != nil {
			return errors.Wrapf(err, errors.ErrIO, "failed to move %s aside", installDir).
				WithDetail("path", installDir)
		}
		oldDir = reserved
	}

	if err := i.fsys.Rename(stagedDir, installDir); err != nil {
		if oldDir != "" {
			if restoreErr := i.fsys.Rename(oldDir, installDir); restoreErr != nil {
				i.logger.Error().Err(restoreErr).
					Str("backup", oldDir).
					Msg("Failed to restore previous tree")
			}
		}
		return errors.Wrapf(err, errors.ErrIO, "failed to move new tree into %s", installDir).
			WithDetail("path", installDir)
	}

	if oldDir != "" {
		if err := i.fsys.RemoveAll(oldDir); err != nil {
			i.logger.Warn().Err(err).Str("path", oldDir).Msg("Failed to remove previous tree")
		}
	}
	return nil
}
