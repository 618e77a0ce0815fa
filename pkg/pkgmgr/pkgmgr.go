// Package pkgmgr describes the package managers devup knows how to
// drive. The manager itself is an external black box: devup only needs
// its binary name, the argument shape for an unattended install, and
// whether invoking it requires elevated privileges. Bootstrapping a
// missing manager is out of scope.
package pkgmgr

import (
	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/logging"
	"github.com/arthur-debert/devup/pkg/runner"
)

// Manager describes one package manager.
type Manager struct {
	// Name identifies the manager in config and logs
	Name string

	// Bin is the executable to invoke
	Bin string

	// InstallArgs precede the package identifier
	InstallArgs []string

	// TrailingArgs follow the package identifier (e.g. choco's -y)
	TrailingArgs []string

	// NeedsRoot marks managers that must run with elevated privileges
	NeedsRoot bool
}

// InstallCommand returns the full argument list for an unattended
// install of id.
func (m Manager) InstallCommand(id string) []string {
	args := make([]string, 0, len(m.InstallArgs)+1+len(m.TrailingArgs))
	args = append(args, m.InstallArgs...)
	args = append(args, id)
	args = append(args, m.TrailingArgs...)
	return args
}

// Known returns the supported managers in detection order.
func Known() []Manager {
	return []Manager{
		{Name: "brew", Bin: "brew", InstallArgs: []string{"install"}},
		{Name: "apt-get", Bin: "apt-get", InstallArgs: []string{"install", "-y"}, NeedsRoot: true},
		{Name: "dnf", Bin: "dnf", InstallArgs: []string{"install", "-y"}, NeedsRoot: true},
		{Name: "pacman", Bin: "pacman", InstallArgs: []string{"-S", "--noconfirm"}, NeedsRoot: true},
		{Name: "choco", Bin: "choco", InstallArgs: []string{"install"}, TrailingArgs: []string{"-y"}, NeedsRoot: true},
	}
}

// Get returns the manager with the given name.
func Get(name string) (*Manager, error) {
	for _, m := range Known() {
		if m.Name == name {
			return &m, nil
		}
	}
	return nil, errors.Newf(errors.ErrManagerUnknown, "unknown package manager %q", name)
}

// Detect returns the first known manager present on the system.
func Detect(r runner.Runner) (*Manager, error) {
	logger := logging.GetLogger("pkgmgr")

	for _, m := range Known() {
		if r.CheckPresence(m.Bin) {
			logger.Debug().Str("manager", m.Name).Msg("Detected package manager")
			return &m, nil
		}
	}
	return nil, errors.New(errors.ErrManagerNotFound,
		"no supported package manager found, install one first (e.g. brew)")
}
