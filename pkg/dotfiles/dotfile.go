package dotfiles

import (
	"path/filepath"
	"strings"

	"github.com/tuck-sh/tuck/pkg/config"
	"github.com/tuck-sh/tuck/pkg/errors"
	"github.com/tuck-sh/tuck/pkg/repo"
	"github.com/tuck-sh/tuck/pkg/targets"
)

// Dotfile represents one file or directory tracked by the repository.
//
// Path always lies under exactly one of the repository's category roots.
// GroupPath is that category root joined with the first path segment below
// it, or the category root itself when Path is the category root.
type Dotfile struct {
	// Path is the absolute location on disk.
	Path string

	// GroupPath is the absolute location of the group root this file
	// belongs to.
	GroupPath string

	// GroupName is the group root's base name, possibly carrying a
	// target suffix.
	GroupName string
}

// Resolve builds a Dotfile from a raw path.
//
// The repository root is looked up profile-aware: a "dotfiles_<profile>"
// segment in the path selects that profile's repository. Fails with
// PATH_NOT_IN_REPOSITORY when the path lies under none of the category
// roots, and with MALFORMED_GROUP_SEGMENT when the first component below
// the category root is not a plain named segment.
func Resolve(s config.Settings, path string) (Dotfile, error) {
	profile, _ := repo.ProfileFromPath(path)
	root, err := repo.Locate(s, profile)
	if err != nil {
		return Dotfile{}, err
	}

	var categoryDir string
	found := false
	for _, category := range repo.Categories() {
		dir := category.Dir(root)
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			categoryDir = dir
			found = true
			break
		}
	}
	if !found {
		return Dotfile{}, errors.Newf(errors.ErrPathNotInRepository,
			"path %q does not belong to dotfiles", path).WithDetail("root", root)
	}

	groupPath := categoryDir
	if path != categoryDir {
		segment, _, _ := strings.Cut(path[len(categoryDir)+1:], string(filepath.Separator))
		if segment == "" || segment == "." || segment == ".." {
			return Dotfile{}, errors.Newf(errors.ErrMalformedGroupSegment,
				"failed to get group for %q relative to the dotfiles directory", path)
		}
		groupPath = filepath.Join(categoryDir, segment)
	}

	return Dotfile{
		Path:      path,
		GroupPath: groupPath,
		GroupName: filepath.Base(groupPath),
	}, nil
}

// Category returns the category root the dotfile lives under.
func (d Dotfile) Category() repo.Category {
	parent := filepath.Base(filepath.Dir(d.GroupPath))
	switch repo.Category(parent) {
	case repo.CategoryConfigs, repo.CategoryHooks, repo.CategorySecrets:
		return repo.Category(parent)
	}
	// GroupPath is the category root itself.
	return repo.Category(filepath.Base(d.GroupPath))
}

// Applicable reports whether the dotfile's group can be used on the
// current platform.
func (d Dotfile) Applicable(s config.Settings) bool {
	return targets.IsApplicable(d.GroupName, s.OS, s.Family)
}

// TargetsRoot reports whether the group deploys to the filesystem root
// instead of the deployment base. Only the reserved group name "Root"
// directly under Configs does.
func (d Dotfile) TargetsRoot() bool {
	return d.Category() == repo.CategoryConfigs && d.GroupName == "Root"
}
