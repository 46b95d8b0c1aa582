package dotfiles

import (
	"path/filepath"

	"github.com/tuck-sh/tuck/pkg/config"
	"github.com/tuck-sh/tuck/pkg/errors"
	"github.com/tuck-sh/tuck/pkg/repo"
)

// DeploymentPath computes where the dotfile should be materialized on the
// target machine. Only meaningful for Configs dotfiles; fails with
// PATH_NOT_UNDER_CONFIGS otherwise.
//
// The sub-path below the group root mirrors its position relative to the
// deployment base: <root>/Configs/zsh/.zshrc deploys to <base>/.zshrc.
// The reserved group "Root" deploys relative to the filesystem root
// instead of the base.
func (d Dotfile) DeploymentPath(s config.Settings) (string, error) {
	if d.Category() != repo.CategoryConfigs {
		return "", errors.Newf(errors.ErrPathNotUnderConfigs,
			"%q is not under the Configs directory", d.Path)
	}

	rel, err := filepath.Rel(d.GroupPath, d.Path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal,
			"failed to compute %q relative to its group", d.Path)
	}

	if d.TargetsRoot() {
		return filepath.Join(string(filepath.Separator), rel), nil
	}

	profile, _ := repo.ProfileFromPath(d.Path)
	root, err := repo.Locate(s, profile)
	if err != nil {
		return "", err
	}

	base, err := config.DeploymentBase(s, root)
	if err != nil {
		return "", err
	}

	return filepath.Join(base, rel), nil
}
