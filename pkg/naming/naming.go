// Package naming checks group names for cross-platform filesystem
// legality, so invalid groups are reported instead of failing at deploy
// time on another machine.
//
// The rules follow the intersection of Windows and Unix filename
// restrictions; see
// https://stackoverflow.com/questions/1976007/what-characters-are-forbidden-in-windows-and-linux-directory-names
package naming

import (
	"strings"
	"unicode"

	"github.com/tuck-sh/tuck/pkg/errors"
)

// reservedDeviceNames are filenames Windows refuses regardless of
// extension. Matching is case-exact.
var reservedDeviceNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// ValidateGroupName returns nil if the group name is legal on every
// supported platform. Checks run in a fixed order and the first violation
// wins.
func ValidateGroupName(group string) error {
	if group == "" {
		return errors.New(errors.ErrInvalidInput, "group name cannot be empty")
	}

	// Checked before the trailing-character rule, which would otherwise
	// claim ".." for itself.
	if group == "." || group == ".." {
		return errors.Newf(errors.ErrReservedRelativeName,
			"group %q is an invalid name on Unix-like systems", group)
	}

	// Single-character names are exempt: their only character is not a
	// trailing one.
	runes := []rune(group)
	last := runes[len(runes)-1]
	if len(runes) > 1 && (unicode.IsSpace(last) || last == '.') {
		return errors.Newf(errors.ErrTrailingCharacterInvalid,
			"group %q ends with a %q which is invalid on Windows", group, last)
	}

	for _, r := range group {
		if strings.ContainsRune(`/<>:"\|?*`, r) || r == 0 {
			return errors.Newf(errors.ErrForbiddenCharacter,
				"group %q contains invalid character %q", group, r)
		}
	}

	for _, r := range group {
		if unicode.IsControl(r) {
			return errors.Newf(errors.ErrControlCharacter,
				"group %q contains control characters", group)
		}
	}

	if _, reserved := reservedDeviceNames[group]; reserved {
		return errors.Newf(errors.ErrReservedDeviceName,
			"group %q is an invalid name on Windows", group)
	}

	return nil
}
