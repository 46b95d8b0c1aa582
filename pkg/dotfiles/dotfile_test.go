package dotfiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuck-sh/tuck/pkg/config"
	"github.com/tuck-sh/tuck/pkg/errors"
	"github.com/tuck-sh/tuck/pkg/repo"
)

// newRepoSettings creates a repository under a fresh config directory and
// returns the settings pointing at it plus the repository root.
func newRepoSettings(t *testing.T) (config.Settings, string) {
	t.Helper()
	s := config.Settings{
		Home:       t.TempDir(),
		ConfigHome: t.TempDir(),
		OS:         "linux",
		Family:     "unix",
	}
	root := filepath.Join(s.ConfigHome, "dotfiles")
	require.NoError(t, os.MkdirAll(root, 0755))
	return s, root
}

func mkfile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
}

func TestResolve(t *testing.T) {
	s, root := newRepoSettings(t)

	for _, category := range repo.Categories() {
		t.Run(string(category), func(t *testing.T) {
			path := filepath.Join(root, string(category), "zsh", ".zshrc")
			d, err := Resolve(s, path)
			require.NoError(t, err)

			assert.Equal(t, path, d.Path)
			assert.Equal(t, filepath.Join(root, string(category), "zsh"), d.GroupPath)
			assert.Equal(t, "zsh", d.GroupName)
			assert.Equal(t, category, d.Category())
		})
	}
}

func TestResolveDeepSubpath(t *testing.T) {
	s, root := newRepoSettings(t)

	path := filepath.Join(root, "Configs", "nvim_linux", ".config", "nvim", "init.lua")
	d, err := Resolve(s, path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "Configs", "nvim_linux"), d.GroupPath)
	assert.Equal(t, "nvim_linux", d.GroupName)
}

func TestResolveCategoryRootItself(t *testing.T) {
	s, root := newRepoSettings(t)

	path := filepath.Join(root, "Configs")
	d, err := Resolve(s, path)
	require.NoError(t, err)

	assert.Equal(t, path, d.GroupPath)
	assert.Equal(t, "Configs", d.GroupName)
	assert.Equal(t, repo.CategoryConfigs, d.Category())
}

func TestResolveProfile(t *testing.T) {
	s, _ := newRepoSettings(t)
	workRoot := filepath.Join(s.ConfigHome, "dotfiles_work")
	require.NoError(t, os.MkdirAll(workRoot, 0755))

	path := filepath.Join(workRoot, "Configs", "zsh", ".zshrc")
	d, err := Resolve(s, path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(workRoot, "Configs", "zsh"), d.GroupPath)
}

func TestResolveOutsideRepository(t *testing.T) {
	s, root := newRepoSettings(t)

	for _, path := range []string{
		"/somewhere/else/.zshrc",
		root, // repository root is above all category roots
		filepath.Join(root, "Notes", "todo.md"),
	} {
		_, err := Resolve(s, path)
		require.Error(t, err, "path %q", path)
		assert.Equal(t, errors.ErrPathNotInRepository, errors.GetErrorCode(err))
	}
}

func TestResolveMalformedGroupSegment(t *testing.T) {
	s, root := newRepoSettings(t)

	for _, path := range []string{
		filepath.Join(root, "Configs") + string(filepath.Separator),
		root + string(filepath.Separator) + "Configs" + string(filepath.Separator) + "..",
		root + string(filepath.Separator) + "Hooks" + string(filepath.Separator) + "." + string(filepath.Separator) + "zsh",
	} {
		_, err := Resolve(s, path)
		require.Error(t, err, "path %q", path)
		assert.Equal(t, errors.ErrMalformedGroupSegment, errors.GetErrorCode(err))
	}
}

func TestResolveWithoutRepository(t *testing.T) {
	s := config.Settings{Home: t.TempDir(), ConfigHome: t.TempDir(), OS: "linux", Family: "unix"}

	_, err := Resolve(s, "/anything")
	require.Error(t, err)
	assert.Equal(t, errors.ErrRepositoryNotFound, errors.GetErrorCode(err))
}

func TestApplicable(t *testing.T) {
	s, root := newRepoSettings(t)
	s.OS, s.Family = "linux", "unix"

	tests := []struct {
		group string
		want  bool
	}{
		{"group_windows", false},
		{"group_linux", true},
		{"group_unix", true},
		{"group_something", true},
		{"some_random_group", true},
	}

	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			d, err := Resolve(s, filepath.Join(root, "Configs", tt.group))
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Applicable(s))
		})
	}
}

func TestTargetsRoot(t *testing.T) {
	s, root := newRepoSettings(t)

	rootGroup, err := Resolve(s, filepath.Join(root, "Configs", "Root"))
	require.NoError(t, err)
	assert.True(t, rootGroup.TargetsRoot())

	zsh, err := Resolve(s, filepath.Join(root, "Configs", "zsh"))
	require.NoError(t, err)
	assert.False(t, zsh.TargetsRoot())

	// "Root" is only reserved under Configs.
	hooksRoot, err := Resolve(s, filepath.Join(root, "Hooks", "Root"))
	require.NoError(t, err)
	assert.False(t, hooksRoot.TargetsRoot())
}
