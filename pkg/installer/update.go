package installer

import (
	"context"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/filesystem"
	"github.com/rstlix0x0/aiassisted/pkg/logging"
	"github.com/rstlix0x0/aiassisted/pkg/manifest"
	"github.com/rstlix0x0/aiassisted/pkg/marker"
	"github.com/rstlix0x0/aiassisted/pkg/paths"
)

// UpdateOptions controls Update
type UpdateOptions struct {
	// Force skips the preview and confirmation
	Force bool
	// Confirmer is asked before applying a non-forced update. A nil
	// Confirmer declines.
	Confirmer Confirmer
}

// UpdateResult describes an update, applied or not
type UpdateResult struct {
	Diff      manifest.Diff
	LocalOnly []string

	Version      string
	VersionKnown bool

	// Preview is nil for forced updates or when it could not be built
	Preview *Preview

	// Cancelled is set when the confirmation was declined. Nothing was
	// written in that case.
	Cancelled bool

	Updated int
	Skipped int
}

// Update brings an installed tree in line with the remote manifest,
// fetching only files whose digest changed.
func (i *Installer) Update(ctx context.Context, target string, opts UpdateOptions) (*UpdateResult, error) {
	done := logging.LogOperationStart(i.logger, "update")
	defer done()

	layout, err := i.requireInstalled(target)
	if err != nil {
		return nil, err
	}

	// 1. Remote manifest
	remoteText, err := i.fetcher.FetchText(ctx, i.source.ManifestURL())
	if err != nil {
		return nil, err
	}
	remote := manifest.Parse(remoteText)
	if err := i.checkReserved(remote); err != nil {
		return nil, err
	}

	// 2. Local manifest, empty when absent or unreadable
	local := i.loadLocalManifest(layout.ManifestFile())

	// 3. Diff
	diff := local.CompareWith(remote)
	result := &UpdateResult{Diff: diff, LocalOnly: local.LocalOnly(remote)}
	i.logger.Info().
		Int("changed", len(diff.Changed)).
		Int("unchanged", len(diff.Unchanged)).
		Int("local_only", len(result.LocalOnly)).
		Msg("Compared manifests")

	// 4. Fetch and verify the delta
	stage, err := newStaging(i.fsys, layout.TargetDir(), i.logger)
	if err != nil {
		return nil, err
	}
	defer stage.cleanup()

	for _, p := range diff.Changed {
		digest, _ := remote.Get(p)
		if err := stage.fetchVerified(ctx, i.fetcher, i.source, p, digest); err != nil {
			return nil, err
		}
	}

	// 5. Fresh version marker
	versionData, version, versionKnown, err := i.remoteVersion(ctx)
	if err != nil {
		return nil, err
	}
	if err := stage.write(paths.VersionFileName, versionData); err != nil {
		return nil, err
	}
	result.Version, result.VersionKnown = version, versionKnown

	// 6. Preview and confirmation
	if !opts.Force {
		preview, err := buildPreview(i.fsys, layout.InstallDir(), stage.dir, diff.Changed, i.previewLines)
		if err != nil {
			i.logger.Warn().Err(err).Msg("Could not generate diff preview")
		} else {
			result.Preview = preview
		}

		ok, err := i.confirm(ctx, opts.Confirmer, result.Preview)
		if err != nil {
			return nil, err
		}
		if !ok {
			i.logger.Info().Msg("Update declined")
			result.Cancelled = true
			return result, nil
		}
	}
	if err := errors.Cancelled(ctx); err != nil {
		return nil, err
	}

	// 7. Apply
	if err := i.applySelectiveUpdate(stage, layout, remote, diff, result); err != nil {
		return nil, err
	}

	i.logger.Info().
		Int("updated", result.Updated).
		Int("skipped", result.Skipped).
		Str("version", marker.Display(version, versionKnown)).
		Msg("Update applied")
	return result, nil
}

func (i *Installer) confirm(ctx context.Context, c Confirmer, preview *Preview) (bool, error) {
	if c == nil {
		return false, nil
	}
	ok, err := c.Confirm(ctx, preview)
	if err != nil {
		if errors.IsCancelled(err) {
			return false, err
		}
		if cancelled := errors.Cancelled(ctx); cancelled != nil {
			return false, cancelled
		}
		return false, errors.Wrap(err, errors.ErrIO, "confirmation failed")
	}
	return ok, nil
}

func (i *Installer) loadLocalManifest(path string) *manifest.Manifest {
	local, err := manifest.Load(i.fsys, path)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrNotFound) {
			i.logger.Warn().Str("path", path).Msg("No local manifest, treating every file as changed")
		} else {
			i.logger.Warn().Err(err).Str("path", path).Msg("Unreadable local manifest, treating every file as changed")
		}
		return manifest.New()
	}
	return local
}

// applySelectiveUpdate writes changed files, then the manifest, then the
// version marker. The marker goes last so it never names a version whose
// files were not all written.
func (i *Installer) applySelectiveUpdate(stage *staging, layout paths.Paths, remote *manifest.Manifest, diff manifest.Diff, result *UpdateResult) error {
	changed := make(map[string]bool, len(diff.Changed))
	for _, p := range diff.Changed {
		changed[p] = true
	}

	for _, p := range remote.Paths() {
		if !changed[p] {
			result.Skipped++
			continue
		}
		dst := layout.InstalledPath(p)
		if err := filesystem.CopyFile(i.fsys, stage.path(p), dst, filePerm); err != nil {
			return errors.Wrapf(err, errors.ErrIO, "failed to update %s", p).
				WithDetail("path", p)
		}
		i.logger.Debug().Str("path", p).Msg("Updated")
		result.Updated++
	}

	if err := filesystem.WriteFileAtomic(i.fsys, layout.ManifestFile(), []byte(remote.String()), filePerm); err != nil {
		return errors.Wrap(err, errors.ErrIO, "failed to write manifest").
			WithDetail("path", layout.ManifestFile())
	}

	if err := filesystem.CopyFile(i.fsys, stage.path(paths.VersionFileName), layout.VersionFile(), filePerm); err != nil {
		return errors.Wrap(err, errors.ErrIO, "failed to write version marker").
			WithDetail("path", layout.VersionFile())
	}
	return nil
}
