package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Path returns the path to the configuration file, creating the parent
// directory under the user's XDG config home if necessary.
func Path() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join("parsedoc", "config.yaml"))
	if err != nil {
		return "", errors.Wrap(err, "config: resolve config path")
	}
	return path, nil
}

// Load reads and validates a rule set from path. If the file does not
// exist, it writes out the default rule set and returns it.
func Load(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		rs := DefaultRuleSet()
		if err := Save(path, rs); err != nil {
			return RuleSet{}, errors.Wrapf(err, "config: write default config to %q", path)
		}
		return rs, nil
	} else if err != nil {
		return RuleSet{}, errors.Wrapf(err, "config: read config from %q", path)
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return RuleSet{}, errors.Wrapf(err, "config: parse config at %q", path)
	}
	if err := rs.Validate(); err != nil {
		return RuleSet{}, errors.Wrapf(err, "config: invalid config at %q", path)
	}
	return rs, nil
}

// Save marshals rs as YAML and writes it to path.
func Save(path string, rs RuleSet) error {
	data, err := yaml.Marshal(rs)
	if err != nil {
		return errors.Wrap(err, "config: marshal config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "config: create config directory for %q", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "config: write config to %q", path)
	}
	return nil
}
