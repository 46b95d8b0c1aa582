package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/tuck-sh/tuck/pkg/errors"
	"github.com/tuck-sh/tuck/pkg/logging"
)

var log = logging.GetLogger("config")

// RepoConfigFile is the name of the optional per-repository configuration
// file at the repository root.
const RepoConfigFile = "tuck.toml"

// RepoConfig represents configuration options stored in tuck.toml.
type RepoConfig struct {
	// Target overrides the deployment base directory for this repository.
	// The TUCK_TARGET environment variable still takes precedence over it.
	Target string `toml:"target"`
}

// LoadRepoConfig reads tuck.toml from the repository root. A missing file
// is not an error; it returns the zero configuration.
func LoadRepoConfig(root string) (RepoConfig, error) {
	var cfg RepoConfig

	path := filepath.Join(root, RepoConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, errors.ErrInvalidInput, "failed to parse %s", path)
	}

	log.Debug().Str("path", path).Str("target", cfg.Target).Msg("Loaded repository config")
	return cfg, nil
}

// DeploymentBase resolves the deployment base directory for a repository.
// Precedence: TUCK_TARGET override, then tuck.toml target, then the home
// directory.
func DeploymentBase(s Settings, root string) (string, error) {
	if s.TargetOverride != "" {
		return s.TargetOverride, nil
	}

	repoCfg, err := LoadRepoConfig(root)
	if err != nil {
		return "", err
	}
	if repoCfg.Target != "" {
		return repoCfg.Target, nil
	}

	if s.Home == "" {
		return "", errors.New(errors.ErrNotFound, "no deployment base directory was found")
	}
	return s.Home, nil
}
