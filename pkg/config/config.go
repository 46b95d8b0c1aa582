// Package config holds the explicit configuration value threaded through
// every entry point of the core.
//
// Nothing below the command layer reads the process environment directly:
// FromEnvironment is the single place ambient state is captured, and the
// resulting Settings value is passed to resolvers, translators and secrets
// sessions. Tests construct Settings by hand against temporary directories.
package config

import (
	"os"
	"runtime"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvRepoHome overrides the directory the dotfiles repository is
	// looked up in. The repository directory name ("dotfiles" or
	// "dotfiles_<profile>") is still appended to it.
	EnvRepoHome = "TUCK_HOME"

	// EnvDeployTarget overrides the deployment base directory used when
	// translating Configs paths to their on-disk destination.
	EnvDeployTarget = "TUCK_TARGET"
)

// Settings carries every piece of ambient state the core needs. It is
// plain data: copy it, mutate the copy, hand it to another component.
type Settings struct {
	// Home is the user's home directory.
	Home string

	// ConfigHome is the platform configuration directory the repository
	// is probed in (XDG_CONFIG_HOME or the platform equivalent).
	ConfigHome string

	// RepoOverride, when non-empty, is the directory the repository is
	// resolved under instead of probing ConfigHome and Home.
	RepoOverride string

	// TargetOverride, when non-empty, replaces Home as the deployment
	// base for Configs groups.
	TargetOverride string

	// OS is the current platform's target token, e.g. "linux" or "macos".
	OS string

	// Family is the current platform's family token, "unix" or "windows".
	Family string
}

// FromEnvironment captures the process environment into a Settings value.
// This is the only function in the codebase that reads environment
// variables on behalf of the core.
func FromEnvironment() (Settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Home:           home,
		ConfigHome:     xdg.ConfigHome,
		RepoOverride:   os.Getenv(EnvRepoHome),
		TargetOverride: os.Getenv(EnvDeployTarget),
		OS:             OSToken(runtime.GOOS),
		Family:         FamilyToken(runtime.GOOS),
	}, nil
}

// OSToken maps a GOOS value to the target token used in group suffixes.
// The only mismatch is darwin, whose suffix token is "macos".
func OSToken(goos string) string {
	if goos == "darwin" {
		return "macos"
	}
	return goos
}

// FamilyToken maps a GOOS value to its OS family token.
func FamilyToken(goos string) string {
	if goos == "windows" {
		return "windows"
	}
	return "unix"
}
