package domain

import (
	"strings"
)

// Characters that are unsafe in filenames on at least one supported platform.
const unsafeNameChars = `<>:"/\|?*`

// ValidateName checks that name is safe to use as a filename component.
// It runs before any file or network I/O so unsafe input never reaches
// the filesystem.
func ValidateName(name string) error {
	switch {
	case name == "":
		return &InvalidNameError{Name: name, Reason: "name is empty"}
	case name == "." || name == "..":
		return &InvalidNameError{Name: name, Reason: "name is a reserved path"}
	case strings.ContainsAny(name, unsafeNameChars):
		return &InvalidNameError{Name: name, Reason: `name contains one of <>:"/\|?*`}
	}

	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return &InvalidNameError{Name: name, Reason: "name contains control characters"}
		}
	}
	return nil
}
