package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Packages)
	assert.NotEmpty(t, c.Extensions)
	assert.Equal(t, []string{"code", "code-insiders"}, c.Editors)

	// Every package needs all three fields for the drivers to work
	for _, p := range c.Packages {
		assert.NotEmpty(t, p.Name, "package name")
		assert.NotEmpty(t, p.ID, "install identifier for %s", p.Name)
		assert.NotEmpty(t, p.Check, "presence check for %s", p.Name)
	}
}

func TestDefault_AliasTable(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	want := map[string]string{
		"cb": "rev-parse --abbrev-ref HEAD",
		"b":  "branch",
		"a":  "add",
		"c":  "commit",
		"p":  "push",
		"f":  "fetch",
		"l":  "log",
		"co": "checkout",
		"s":  "status",
		"d":  "diff",
	}
	assert.Equal(t, want, c.Aliases)
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Packages)
}

func TestLoad_TOMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	content := `
editors = ["vim"]

[[packages]]
name = "CMake"
id = "cmake"
check = "cmake"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"vim"}, c.Editors)
	assert.Equal(t, []Package{{Name: "CMake", ID: "cmake", Check: "cmake"}}, c.Packages)
	// Absent sections keep their defaults
	assert.NotEmpty(t, c.Extensions)
	assert.NotEmpty(t, c.Aliases)
}

func TestLoad_YAMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
extensions:
  - vscodevim.vim
packages:
  - name: Go
    id: go
    check: go
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"vscodevim.vim"}, c.Extensions)
	assert.Equal(t, []Package{{Name: "Go", ID: "go", Check: "go"}}, c.Packages)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editors: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
