package provision

import (
	"os"

	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/pkgmgr"
)

// Elevated reports whether the process runs with elevated privileges.
// On platforms without an effective uid the answer is unknowable here
// and reported as true; the package manager itself will complain if it
// actually needed more.
func Elevated() bool {
	if euid := os.Geteuid(); euid >= 0 {
		return euid == 0
	}
	return true
}

// CheckElevation verifies the elevation precondition for the selected
// package manager before any action runs. Managers like brew must not
// run as root, so the check only applies where the manager demands it.
func CheckElevation(mgr pkgmgr.Manager) error {
	if mgr.NeedsRoot && !Elevated() {
		return errors.Newf(errors.ErrNotElevated,
			"%s requires elevated privileges, re-run with sudo", mgr.Name)
	}
	return nil
}
