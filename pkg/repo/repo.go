// Package repo locates the dotfiles repository and answers questions
// about its layout.
//
// A repository is a directory named "dotfiles" (or "dotfiles_<profile>"
// for an alternate profile) holding up to three category roots:
//
//	<root>/Configs/<group>/...
//	<root>/Hooks/<group>/...
//	<root>/Secrets/<group>/...
//
// Lookup order: the TUCK_HOME override if set, then the platform config
// directory, then a dotted directory in the user's home.
package repo

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tuck-sh/tuck/pkg/config"
	"github.com/tuck-sh/tuck/pkg/errors"
	"github.com/tuck-sh/tuck/pkg/logging"
)

var log = logging.GetLogger("repo")

// Category identifies one of the repository's three category roots.
type Category string

const (
	CategoryConfigs Category = "Configs"
	CategoryHooks   Category = "Hooks"
	CategorySecrets Category = "Secrets"
)

// Categories returns all category roots in their canonical order.
func Categories() []Category {
	return []Category{CategoryConfigs, CategoryHooks, CategorySecrets}
}

// Dir returns the absolute path of the category root under the given
// repository root.
func (c Category) Dir(root string) string {
	return filepath.Join(root, string(c))
}

// DirName returns the repository directory name for a profile. An empty
// profile selects the default "dotfiles" namespace.
func DirName(profile string) string {
	if profile == "" {
		return "dotfiles"
	}
	return "dotfiles_" + profile
}

// Locate resolves the repository root for a profile.
//
// With a TUCK_HOME override the repository lives directly under it and no
// existence probing happens. Otherwise the platform config directory is
// probed first, then the dotted home-directory variant. Fails with
// REPOSITORY_NOT_FOUND when neither exists.
func Locate(s config.Settings, profile string) (string, error) {
	dirName := DirName(profile)

	if s.RepoOverride != "" {
		return filepath.Join(s.RepoOverride, dirName), nil
	}

	configRepo := filepath.Join(s.ConfigHome, dirName)
	homeRepo := filepath.Join(s.Home, "."+dirName)

	switch {
	case dirExists(configRepo):
		return configRepo, nil
	case dirExists(homeRepo):
		return homeRepo, nil
	}

	initCmd := "tuck init"
	if profile != "" {
		initCmd = "tuck -p " + profile + " init"
	}
	return "", errors.Newf(errors.ErrRepositoryNotFound,
		"couldn't find the dotfiles directory: make sure %s exists or run `%s`",
		configRepo, initCmd)
}

// ProfileFromPath extracts the profile from a path inside an alternate
// repository namespace. It scans for the "dotfiles_" marker segment and
// returns everything up to the next path separator. The second return
// value is false when the path carries no profile.
func ProfileFromPath(path string) (string, bool) {
	const marker = "dotfiles_"

	idx := strings.Index(path, marker)
	if idx < 0 {
		return "", false
	}

	rest := path[idx+len(marker):]
	if sep := strings.IndexRune(rest, filepath.Separator); sep >= 0 {
		rest = rest[:sep]
	}

	if rest == "" {
		return "", false
	}
	return rest, true
}

// ContainsGroup reports whether a group directory exists under the given
// category for the profile's repository.
func ContainsGroup(s config.Settings, profile string, category Category, group string) bool {
	root, err := Locate(s, profile)
	if err != nil {
		return false
	}

	_, err = os.Stat(filepath.Join(category.Dir(root), group))
	return err == nil
}

// MissingGroups returns the requested group names that have no
// corresponding directory under the category. The wildcard "*" is never
// reported missing. Returns nil when every group exists.
func MissingGroups(s config.Settings, profile string, category Category, groups []string) []string {
	var missing []string
	for _, group := range groups {
		if group == "*" {
			continue
		}
		if !ContainsGroup(s, profile, category, group) {
			missing = append(missing, group)
		}
	}
	return missing
}

// Groups lists the group directories under a category, sorted by name.
// Fails with CATEGORY_NOT_SETUP when the category root does not exist.
func Groups(s config.Settings, profile string, category Category) ([]string, error) {
	root, err := Locate(s, profile)
	if err != nil {
		return nil, err
	}

	dir := category.Dir(root)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrCategoryNotSetup,
				"no %s folder set up in %s", category, root)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", dir)
	}

	var groups []string
	for _, entry := range entries {
		if entry.IsDir() {
			groups = append(groups, entry.Name())
		}
	}
	sort.Strings(groups)

	log.Debug().Str("category", string(category)).Int("count", len(groups)).Msg("Listed groups")
	return groups, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
