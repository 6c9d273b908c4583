package installer

import (
	"context"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/filesystem"
	"github.com/rstlix0x0/aiassisted/pkg/manifest"
	"github.com/rstlix0x0/aiassisted/pkg/paths"
)

// CheckResult reports how an installed tree relates to the remote one
type CheckResult struct {
	Status

	// Pending is the file level difference. It is nil when it could not be
	// computed; DiffErr then says why.
	Pending   *manifest.Diff
	LocalOnly []string
	DiffErr   error
}

// Check compares the installed version marker with the remote one and,
// best effort, lists the files an update would fetch.
func (i *Installer) Check(ctx context.Context, target string) (*CheckResult, error) {
	layout, err := i.requireInstalled(target)
	if err != nil {
		return nil, err
	}

	st, err := i.Status(ctx, target)
	if err != nil {
		return nil, err
	}
	result := &CheckResult{Status: *st}

	remoteText, err := i.fetcher.FetchText(ctx, i.source.ManifestURL())
	if err != nil {
		if errors.IsCancelled(err) {
			return nil, err
		}
		i.logger.Warn().Err(err).Msg("Could not compute pending changes")
		result.DiffErr = err
		return result, nil
	}
	remote := manifest.Parse(remoteText)
	local := i.loadLocalManifest(layout.ManifestFile())

	diff := local.CompareWith(remote)
	result.Pending = &diff
	result.LocalOnly = local.LocalOnly(remote)
	return result, nil
}

// Verify checks every file listed in the installed manifest against its digest.
func (i *Installer) Verify(target string) (*manifest.TreeReport, error) {
	layout, err := i.requireInstalled(target)
	if err != nil {
		return nil, err
	}

	m, err := manifest.Load(i.fsys, layout.ManifestFile())
	if err != nil {
		return nil, err
	}

	report := manifest.VerifyTree(i.fsys, layout.InstallDir(), m)
	i.logger.Info().
		Int("ok", len(report.OK)).
		Int("mismatched", len(report.Mismatched)).
		Int("missing", len(report.Missing)).
		Msg("Verified installed tree")
	return &report, nil
}

func (i *Installer) requireInstalled(target string) (paths.Paths, error) {
	layout, err := i.layout(target)
	if err != nil {
		return nil, err
	}
	if !filesystem.IsDir(i.fsys, layout.InstallDir()) {
		return nil, errors.Newf(errors.ErrNotInstalled, "%s not found", layout.InstallDir()).
			WithDetail("path", layout.InstallDir())
	}
	return layout, nil
}
