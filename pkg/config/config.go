// Package config loads devup's run configuration. Defaults are embedded,
// then merged with the user config file and DEVUP_* environment
// variables, in that order. A missing user config file is normal; a
// malformed one degrades to defaults with a warning so the rest of the
// run can proceed (only the identity step loses its inputs).
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/logging"
	"github.com/arthur-debert/devup/pkg/paths"
)

// Identity is the pair of values applied to git's global settings.
// Both must be non-empty for identity configuration to run.
type Identity struct {
	Name  string `koanf:"name"`
	Email string `koanf:"email"`
}

// Complete reports whether both identity fields are set.
func (i Identity) Complete() bool {
	return i.Name != "" && i.Email != ""
}

// CloneConfig controls the batch repository cloner.
type CloneConfig struct {
	ReposFile string `koanf:"repos_file"`
	TargetDir string `koanf:"target_dir"`
}

// ProvisionConfig controls the install drivers.
type ProvisionConfig struct {
	Manager string        `koanf:"manager"`
	Strict  bool          `koanf:"strict"`
	Timeout time.Duration `koanf:"timeout"`
}

// CatalogConfig points at an optional catalog override file.
type CatalogConfig struct {
	File string `koanf:"file"`
}

// Config is devup's full run configuration.
type Config struct {
	Git       Identity        `koanf:"git"`
	Clone     CloneConfig     `koanf:"clone"`
	Provision ProvisionConfig `koanf:"provision"`
	Catalog   CatalogConfig   `koanf:"catalog"`
}

// Load builds the configuration from defaults, the user config file and
// the environment. An empty configFile means the default location.
func Load(configFile string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Embedded defaults always load; failure here is a build defect.
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 2. User config file, if present. A malformed file is warned about
	// and skipped so the run can continue on defaults.
	if configFile == "" {
		configFile = paths.ConfigFile()
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			logger.Warn().
				Err(err).
				Str("path", configFile).
				Msg("Ignoring malformed config file, continuing with defaults")
		} else {
			logger.Debug().Str("path", configFile).Msg("Loaded config file")
		}
	} else {
		logger.Debug().Str("path", configFile).Msg("No config file found, using defaults")
	}

	// 3. Environment overrides: DEVUP_GIT_NAME -> git.name
	envProvider := env.Provider("DEVUP_", ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, "DEVUP_")), "_", ".", 1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse configuration")
	}

	if cfg.Clone.TargetDir == "" {
		cfg.Clone.TargetDir = paths.DefaultCloneDir()
	}

	return &cfg, nil
}
