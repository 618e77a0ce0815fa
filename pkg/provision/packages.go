package provision

import (
	"context"

	"github.com/arthur-debert/devup/pkg/catalog"
	"github.com/arthur-debert/devup/pkg/logging"
	"github.com/arthur-debert/devup/pkg/pkgmgr"
	"github.com/arthur-debert/devup/pkg/runner"
)

// InstallPackages drives the package catalog: items whose presence
// check resolves are skipped, the rest are installed through the
// package manager in unattended mode. A failed install is recorded and
// the batch moves on; installs are independent of each other.
func InstallPackages(ctx context.Context, r runner.Runner, mgr pkgmgr.Manager, pkgs []catalog.Package) *StepResult {
	logger := logging.GetLogger("provision.packages")
	result := &StepResult{Step: "packages"}

	for _, pkg := range pkgs {
		if r.CheckPresence(pkg.Check) {
			logger.Info().
				Str("package", pkg.Name).
				Str("check", pkg.Check).
				Msg("Already installed, skipping")
			result.add(pkg.Name, StatusSkipped, nil)
			continue
		}

		logger.Info().
			Str("package", pkg.Name).
			Str("id", pkg.ID).
			Str("manager", mgr.Name).
			Msg("Installing package")

		if err := r.Run(ctx, mgr.Bin, mgr.InstallCommand(pkg.ID)...); err != nil {
			logger.Warn().
				Err(err).
				Str("package", pkg.Name).
				Msg("Install failed, continuing with remaining packages")
			result.add(pkg.Name, StatusFailed, err)
			continue
		}
		result.add(pkg.Name, StatusInstalled, nil)
	}

	logger.Info().
		Int("installed", result.Count(StatusInstalled)).
		Int("skipped", result.Count(StatusSkipped)).
		Int("failed", result.Failed()).
		Msg("Package step finished")

	return result
}
