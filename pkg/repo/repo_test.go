package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuck-sh/tuck/pkg/config"
	"github.com/tuck-sh/tuck/pkg/errors"
)

// newSettings returns Settings rooted in fresh temp directories, with no
// repository created yet.
func newSettings(t *testing.T) config.Settings {
	t.Helper()
	return config.Settings{
		Home:       t.TempDir(),
		ConfigHome: t.TempDir(),
		OS:         "linux",
		Family:     "unix",
	}
}

func TestLocateOverride(t *testing.T) {
	s := newSettings(t)
	s.RepoOverride = "/srv/tuck"

	root, err := Locate(s, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/srv/tuck", "dotfiles"), root)

	root, err = Locate(s, "work")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/srv/tuck", "dotfiles_work"), root)
}

func TestLocatePrefersConfigDir(t *testing.T) {
	s := newSettings(t)
	configRepo := filepath.Join(s.ConfigHome, "dotfiles")
	homeRepo := filepath.Join(s.Home, ".dotfiles")
	require.NoError(t, os.MkdirAll(configRepo, 0755))
	require.NoError(t, os.MkdirAll(homeRepo, 0755))

	root, err := Locate(s, "")
	require.NoError(t, err)
	assert.Equal(t, configRepo, root)
}

func TestLocateHomeFallback(t *testing.T) {
	s := newSettings(t)
	homeRepo := filepath.Join(s.Home, ".dotfiles_work")
	require.NoError(t, os.MkdirAll(homeRepo, 0755))

	root, err := Locate(s, "work")
	require.NoError(t, err)
	assert.Equal(t, homeRepo, root)
}

func TestLocateNotFound(t *testing.T) {
	s := newSettings(t)

	_, err := Locate(s, "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRepositoryNotFound))
	assert.Contains(t, err.Error(), "tuck init")

	_, err = Locate(s, "work")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tuck -p work init")
}

func TestProfileFromPath(t *testing.T) {
	sep := string(filepath.Separator)

	tests := []struct {
		name     string
		path     string
		want     string
		wantOK   bool
	}{
		{
			name:   "profile directory itself",
			path:   filepath.Join("home", "u", ".config", "dotfiles_work"),
			want:   "work",
			wantOK: true,
		},
		{
			name:   "profile with underscores and trailing path",
			path:   filepath.Join("home", "u", ".config", "dotfiles_my_home", "Configs", "zsh", "test.cfg"),
			want:   "my_home",
			wantOK: true,
		},
		{
			name:   "no profile marker",
			path:   filepath.Join("home", "u", ".config"),
			wantOK: false,
		},
		{
			name:   "marker not present in similar name",
			path:   filepath.Join("home", "u", ".config", "somethingelse_work", "Configs", "Vim"),
			wantOK: false,
		},
		{
			name:   "default repo has no profile",
			path:   filepath.Join("home", "u", ".config", "dotfiles", "Configs") + sep,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ProfileFromPath(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestContainsGroup(t *testing.T) {
	s := newSettings(t)
	require.NoError(t, os.MkdirAll(filepath.Join(s.ConfigHome, "dotfiles", "Configs", "zsh"), 0755))

	assert.True(t, ContainsGroup(s, "", CategoryConfigs, "zsh"))
	assert.False(t, ContainsGroup(s, "", CategoryConfigs, "nvim"))
	assert.False(t, ContainsGroup(s, "", CategoryHooks, "zsh"))

	// Unknown profile means no repository, so nothing is contained.
	assert.False(t, ContainsGroup(s, "work", CategoryConfigs, "zsh"))
}

func TestMissingGroups(t *testing.T) {
	s := newSettings(t)
	require.NoError(t, os.MkdirAll(filepath.Join(s.ConfigHome, "dotfiles", "Configs", "zsh"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(s.ConfigHome, "dotfiles", "Configs", "nvim_linux"), 0755))

	assert.Nil(t, MissingGroups(s, "", CategoryConfigs, []string{"zsh", "nvim_linux"}))
	assert.Nil(t, MissingGroups(s, "", CategoryConfigs, []string{"*"}))
	assert.Equal(t, []string{"tmux", "git"},
		MissingGroups(s, "", CategoryConfigs, []string{"tmux", "zsh", "git"}))
}

func TestGroups(t *testing.T) {
	s := newSettings(t)
	configsDir := filepath.Join(s.ConfigHome, "dotfiles", "Configs")
	require.NoError(t, os.MkdirAll(filepath.Join(configsDir, "zsh"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(configsDir, "nvim"), 0755))
	// Stray files are not groups.
	require.NoError(t, os.WriteFile(filepath.Join(configsDir, "README.md"), []byte("x"), 0644))

	groups, err := Groups(s, "", CategoryConfigs)
	require.NoError(t, err)
	assert.Equal(t, []string{"nvim", "zsh"}, groups)
}

func TestGroupsCategoryNotSetup(t *testing.T) {
	s := newSettings(t)
	require.NoError(t, os.MkdirAll(filepath.Join(s.ConfigHome, "dotfiles"), 0755))

	_, err := Groups(s, "", CategorySecrets)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCategoryNotSetup))
}
