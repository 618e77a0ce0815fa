// Package provision implements devup's provisioning drivers: package
// installation, git configuration, editor extension installation and
// batch repository cloning. Every driver is a single linear pass over a
// declarative catalog with a best-effort forward-progress policy:
// individual item failures are collected in the run report, never
// propagated mid-batch.
package provision

import (
	"context"

	"github.com/arthur-debert/devup/pkg/catalog"
	"github.com/arthur-debert/devup/pkg/config"
	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/logging"
	"github.com/arthur-debert/devup/pkg/pkgmgr"
	"github.com/arthur-debert/devup/pkg/runner"
)

// Options collects everything a full provisioning run needs.
type Options struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	Runner  runner.Runner

	// Manager overrides auto-detection when set
	Manager *pkgmgr.Manager

	// Clone enables the opt-in repository cloning step
	Clone bool
}

// ResolveManager returns the configured manager, or the first one
// present on the system when the config leaves it open.
func ResolveManager(cfg *config.Config, r runner.Runner) (*pkgmgr.Manager, error) {
	if cfg != nil && cfg.Provision.Manager != "" {
		return pkgmgr.Get(cfg.Provision.Manager)
	}
	return pkgmgr.Detect(r)
}

// Run performs a full provisioning pass: packages first (so later steps
// can rely on the tools being present), then git configuration, then
// extensions for every compatible editor, then the opt-in repository
// clones. The returned error is reserved for preconditions; per-item
// failures live in the report.
func Run(ctx context.Context, opts Options) (*Report, error) {
	logger := logging.GetLogger("provision")

	if opts.Config == nil || opts.Catalog == nil || opts.Runner == nil {
		return nil, errors.New(errors.ErrInvalidInput, "config, catalog and runner are required")
	}

	mgr := opts.Manager
	if mgr == nil {
		resolved, err := ResolveManager(opts.Config, opts.Runner)
		if err != nil {
			return nil, err
		}
		mgr = resolved
	}

	if err := CheckElevation(*mgr); err != nil {
		return nil, err
	}

	logger.Info().
		Str("manager", mgr.Name).
		Int("packages", len(opts.Catalog.Packages)).
		Int("editors", len(opts.Catalog.Editors)).
		Bool("clone", opts.Clone).
		Msg("Starting provisioning run")

	report := &Report{}
	report.Add(InstallPackages(ctx, opts.Runner, *mgr, opts.Catalog.Packages))
	report.Add(ApplyGitConfig(ctx, opts.Runner, opts.Config.Git, opts.Catalog.Aliases))

	for _, editor := range opts.Catalog.Editors {
		report.Add(InstallExtensions(ctx, opts.Runner, editor, opts.Catalog.Extensions))
	}

	if opts.Clone {
		step, err := CloneRepos(ctx, opts.Runner,
			opts.Config.Clone.ReposFile, opts.Config.Clone.TargetDir)
		report.Add(step)
		if err != nil {
			// Clone setup failures (unreadable list, target dir) end
			// the run here, but everything before already happened.
			return report, err
		}
	}

	logger.Info().
		Int("installed", report.Installed()).
		Int("skipped", report.Skipped()).
		Int("failed", report.Failed()).
		Msg("Provisioning run finished")

	return report, nil
}

// StrictError converts a report into an error when strict mode is on
// and any item failed, so the process can exit non-zero.
func StrictError(report *Report, strict bool) error {
	if !strict || report == nil || report.Failed() == 0 {
		return nil
	}
	return errors.Newf(errors.ErrStepsFailed, "%d item(s) failed", report.Failed())
}
