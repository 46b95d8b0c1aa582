// Package targets implements platform conditioning for group names.
//
// A group directory may carry a target suffix ("zsh_linux", "wsl_windows")
// restricting it to one operating system or OS family. Two groups sharing
// a base name but differing by suffix are variants of the same logical
// group; the most platform-specific applicable variant wins.
package targets

import "strings"

// Suffixes recognized at the end of a group name. OS tokens first, then
// family tokens.
var validSuffixes = []string{
	"_windows",
	"_macos",
	"_ios",
	"_linux",
	"_android",
	"_freebsd",
	"_dragonfly",
	"_openbsd",
	"_netbsd",
	"_none",
	"_unix",
}

// Group priority levels, ordered by specificity.
const (
	// PriorityNone is an unconditioned group with no target suffix.
	PriorityNone = 0
	// PriorityFamily is a group conditioned on an OS family (_unix, _windows).
	PriorityFamily = 1
	// PriorityOS is a group conditioned on a specific operating system.
	PriorityOS = 2
)

// HasSuffix reports whether the group name ends with a recognized target
// suffix.
func HasSuffix(group string) bool {
	for _, suffix := range validSuffixes {
		if strings.HasSuffix(group, suffix) {
			return true
		}
	}
	return false
}

// Strip removes the first matching recognized suffix from the group name.
// Names without a recognized suffix are returned unchanged.
func Strip(group string) string {
	for _, suffix := range validSuffixes {
		if base, ok := strings.CutSuffix(group, suffix); ok {
			return base
		}
	}
	return group
}

// Priority returns the priority level of a group name. A more OS-specific
// target has higher priority: an OS token beats a family token, which
// beats no suffix at all.
func Priority(group string) int {
	target := group
	if idx := strings.LastIndex(group, "_"); idx >= 0 {
		target = group[idx+1:]
	}

	switch {
	case target == "unix" || target == "windows":
		return PriorityFamily
	case !HasSuffix(group):
		return PriorityNone
	default:
		return PriorityOS
	}
}

// HighestPriorityIndex returns the index of the group with the highest
// priority. Ties are resolved in favor of the later occurrence. The
// second return value is false for an empty slice.
func HighestPriorityIndex(groups []string) (int, bool) {
	if len(groups) == 0 {
		return 0, false
	}

	highestPriority := 0
	highestIdx := 0

	for idx, group := range groups {
		if p := Priority(group); p >= highestPriority {
			highestPriority = p
			highestIdx = idx
		}
	}

	return highestIdx, true
}

// IsApplicable reports whether a group can be used on the platform
// identified by its OS and family tokens. Unconditioned groups apply
// everywhere; conditioned groups apply when their suffix matches either
// token.
func IsApplicable(group, osName, family string) bool {
	if !HasSuffix(group) {
		return true
	}
	return strings.HasSuffix(group, "_"+osName) || strings.HasSuffix(group, "_"+family)
}

// BestVariant picks, among variants of one logical group, the one that
// should be materialized on the given platform: the applicable variant
// with the highest priority, later occurrences winning ties. The second
// return value is false when no variant applies.
func BestVariant(groups []string, osName, family string) (string, bool) {
	var applicable []string
	for _, group := range groups {
		if IsApplicable(group, osName, family) {
			applicable = append(applicable, group)
		}
	}

	idx, ok := HighestPriorityIndex(applicable)
	if !ok {
		return "", false
	}
	return applicable[idx], true
}
