package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFile_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfigFile, "/tmp/custom/devup.toml")
	assert.Equal(t, "/tmp/custom/devup.toml", ConfigFile())
}

func TestConfigFile_Default(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	got := ConfigFile()
	assert.True(t, strings.HasSuffix(got, filepath.Join(AppDirName, ConfigFileName)),
		"config file should live in a devup directory: %s", got)
}

func TestDefaultCloneDir_EnvOverride(t *testing.T) {
	t.Setenv(EnvCloneDir, "/tmp/workspace")
	assert.Equal(t, "/tmp/workspace", DefaultCloneDir())
}

func TestDefaultCloneDir_Default(t *testing.T) {
	t.Setenv(EnvCloneDir, "")
	got := DefaultCloneDir()
	assert.Equal(t, "src", filepath.Base(got))
}
