// Package catalog holds the declarative tables that drive provisioning:
// desired packages, editor extension identifiers, host editor commands
// and the git alias table. Catalogs are plain data so drivers can be
// exercised with synthetic catalogs in tests.
package catalog

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/logging"
)

//go:embed catalog.toml
var defaultCatalog []byte

// Package is one desired package: a display name, the identifier the
// package manager installs, and the executable whose presence makes the
// install unnecessary.
type Package struct {
	Name  string `toml:"name"`
	ID    string `toml:"id"`
	Check string `toml:"check"`
}

// Catalog is the full set of desired items for a run.
type Catalog struct {
	Editors    []string          `toml:"editors"`
	Extensions []string          `toml:"extensions"`
	Aliases    map[string]string `toml:"aliases"`
	Packages   []Package         `toml:"packages"`
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(defaultCatalog, &c); err != nil {
		return nil, errors.Wrap(err, errors.ErrCatalogParse, "failed to parse built-in catalog")
	}
	return &c, nil
}

// Load returns the built-in catalog with the sections present in path
// replacing the built-in section wholesale; absent sections keep their
// defaults. The file goes through the same koanf pipeline as the run
// configuration, with the parser chosen by extension: .yaml/.yml is
// YAML, anything else is TOML.
func Load(path string) (*Catalog, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return c, nil
	}

	logger := logging.GetLogger("catalog")

	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogLoad, "failed to read catalog file %s", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogParse, "failed to parse catalog file %s", path)
	}

	var override Catalog
	if err := k.UnmarshalWithConf("", &override, koanf.UnmarshalConf{Tag: "toml"}); err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogParse, "failed to parse catalog file %s", path)
	}

	if override.Editors != nil {
		c.Editors = override.Editors
	}
	if override.Extensions != nil {
		c.Extensions = override.Extensions
	}
	if override.Aliases != nil {
		c.Aliases = override.Aliases
	}
	if override.Packages != nil {
		c.Packages = override.Packages
	}

	logger.Debug().
		Str("path", path).
		Int("packages", len(c.Packages)).
		Int("extensions", len(c.Extensions)).
		Msg("Loaded catalog")

	return c, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return kyaml.Parser()
	default:
		return ktoml.Parser()
	}
}
