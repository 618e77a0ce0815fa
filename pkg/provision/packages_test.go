// pkg/provision/packages_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Fake runner
// PURPOSE: Idempotence and forward-progress of the package driver

package provision

import (
	"context"
	"errors"
	"testing"

	"github.com/arthur-debert/devup/pkg/catalog"
	"github.com/arthur-debert/devup/pkg/pkgmgr"
	"github.com/arthur-debert/devup/pkg/runner/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brewManager(t *testing.T) pkgmgr.Manager {
	t.Helper()
	m, err := pkgmgr.Get("brew")
	require.NoError(t, err)
	return *m
}

func TestInstallPackages_SkipsPresent(t *testing.T) {
	r := testutil.NewFakeRunner("git", "rg")
	pkgs := []catalog.Package{
		{Name: "Git", ID: "git", Check: "git"},
		{Name: "ripgrep", ID: "ripgrep", Check: "rg"},
	}

	result := InstallPackages(context.Background(), r, brewManager(t), pkgs)

	// Present items must never trigger an install invocation
	assert.Empty(t, r.Calls)
	assert.Equal(t, 2, result.Count(StatusSkipped))
	assert.Zero(t, result.Failed())
}

func TestInstallPackages_InstallsMissing(t *testing.T) {
	r := testutil.NewFakeRunner("git")
	pkgs := []catalog.Package{
		{Name: "Git", ID: "git", Check: "git"},
		{Name: "ripgrep", ID: "ripgrep", Check: "rg"},
		{Name: "jq", ID: "jq", Check: "jq"},
	}

	result := InstallPackages(context.Background(), r, brewManager(t), pkgs)

	assert.Equal(t, []string{
		"brew install ripgrep",
		"brew install jq",
	}, r.CallLines())
	assert.Equal(t, 2, result.Count(StatusInstalled))
	assert.Equal(t, 1, result.Count(StatusSkipped))
}

func TestInstallPackages_ForwardProgressOnFailure(t *testing.T) {
	r := testutil.NewFakeRunner()
	r.FailOn = func(name string, args []string) error {
		// Only the middle item's install fails
		if len(args) > 1 && args[1] == "broken" {
			return errors.New("install exploded")
		}
		return nil
	}
	pkgs := []catalog.Package{
		{Name: "First", ID: "first", Check: "first"},
		{Name: "Broken", ID: "broken", Check: "broken"},
		{Name: "Last", ID: "last", Check: "last"},
	}

	result := InstallPackages(context.Background(), r, brewManager(t), pkgs)

	// All three installs must have been attempted despite the failure
	assert.Len(t, r.Calls, 3)
	assert.Equal(t, 1, result.Failed())
	assert.Equal(t, 2, result.Count(StatusInstalled))

	failed := result.Items[1]
	assert.Equal(t, "Broken", failed.Name)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Error(t, failed.Err)
}

func TestInstallPackages_UnattendedArgsPerManager(t *testing.T) {
	r := testutil.NewFakeRunner()
	mgr, err := pkgmgr.Get("apt-get")
	require.NoError(t, err)

	InstallPackages(context.Background(), r, *mgr, []catalog.Package{
		{Name: "Git", ID: "git", Check: "git"},
	})

	assert.Equal(t, []string{"apt-get install -y git"}, r.CallLines())
}

func TestInstallPackages_EmptyCatalog(t *testing.T) {
	r := testutil.NewFakeRunner()

	result := InstallPackages(context.Background(), r, brewManager(t), nil)

	assert.Empty(t, r.Calls)
	assert.Empty(t, result.Items)
}
