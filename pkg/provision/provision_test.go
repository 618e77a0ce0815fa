// pkg/provision/provision_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Fake runner
// PURPOSE: Orchestration of a full provisioning run

package provision

import (
	"context"
	"testing"

	"github.com/arthur-debert/devup/pkg/catalog"
	"github.com/arthur-debert/devup/pkg/config"
	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/pkgmgr"
	"github.com/arthur-debert/devup/pkg/runner/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Editors:    []string{"code", "code-insiders"},
		Extensions: []string{"golang.go"},
		Aliases:    map[string]string{"s": "status"},
		Packages: []catalog.Package{
			{Name: "Git", ID: "git", Check: "git"},
			{Name: "jq", ID: "jq", Check: "jq"},
		},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Git:   config.Identity{Name: "Ada", Email: "ada@example.com"},
		Clone: config.CloneConfig{ReposFile: "repos.txt", TargetDir: "/tmp/src"},
	}
}

func TestRun_FullPass(t *testing.T) {
	r := testutil.NewFakeRunner("brew", "git", "code")

	report, err := Run(context.Background(), Options{
		Config:  testConfig(),
		Catalog: testCatalog(),
		Runner:  r,
	})
	require.NoError(t, err)

	lines := r.CallLines()
	// Packages run first so later steps can rely on the tools
	assert.Equal(t, "brew install jq", lines[0])
	assert.Contains(t, lines, "git config --global user.name Ada")
	assert.Contains(t, lines, "git config --global alias.s status")
	assert.Contains(t, lines, "code --install-extension golang.go --force")
	// The absent editor contributes no calls but does not fail the run
	assert.Empty(t, r.CallsFor("code-insiders"))

	assert.Zero(t, report.Failed())
	assert.Equal(t, 2, report.Skipped(), "present package and absent editor")
}

func TestRun_CloneIsOptIn(t *testing.T) {
	r := testutil.NewFakeRunner("brew", "git")

	_, err := Run(context.Background(), Options{
		Config:  testConfig(),
		Catalog: testCatalog(),
		Runner:  r,
	})
	require.NoError(t, err)

	for _, call := range r.CallsFor("git") {
		assert.NotEqual(t, "clone", call.Args[0], "clone must not run without opt-in")
	}
}

func TestRun_NoManagerFound(t *testing.T) {
	r := testutil.NewFakeRunner()

	_, err := Run(context.Background(), Options{
		Config:  testConfig(),
		Catalog: testCatalog(),
		Runner:  r,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManagerNotFound))
}

func TestRun_ConfiguredManagerWins(t *testing.T) {
	// brew is present but the config pins apt-get
	r := testutil.NewFakeRunner("brew", "apt-get")
	cfg := testConfig()
	cfg.Provision.Manager = "apt-get"

	mgr, err := ResolveManager(cfg, r)
	require.NoError(t, err)
	assert.Equal(t, "apt-get", mgr.Name)
}

func TestRun_MissingInputs(t *testing.T) {
	_, err := Run(context.Background(), Options{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestCheckElevation(t *testing.T) {
	brew, err := pkgmgr.Get("brew")
	require.NoError(t, err)
	// brew never demands elevation, so this must pass for any uid
	assert.NoError(t, CheckElevation(*brew))

	apt, err := pkgmgr.Get("apt-get")
	require.NoError(t, err)
	if Elevated() {
		assert.NoError(t, CheckElevation(*apt))
	} else {
		gotErr := CheckElevation(*apt)
		require.Error(t, gotErr)
		assert.True(t, errors.IsErrorCode(gotErr, errors.ErrNotElevated))
	}
}

func TestStrictError(t *testing.T) {
	failing := &Report{Steps: []*StepResult{{
		Step:  "packages",
		Items: []ItemResult{{Name: "x", Status: StatusFailed, Err: assert.AnError}},
	}}}
	clean := &Report{}

	assert.NoError(t, StrictError(failing, false), "lenient mode swallows failures")
	assert.NoError(t, StrictError(clean, true))

	err := StrictError(failing, true)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStepsFailed))
}
