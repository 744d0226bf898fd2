package modinfo

import (
	"strings"

	version "github.com/hashicorp/go-version"
)

// AtLeast reports whether v is greater than or equal to minimum.
// Build metadata after '+' is ignored on v. Unparseable versions compare as lower.
func AtLeast(v, minimum string) bool {
	v, _, _ = strings.Cut(v, "+")
	have, err := version.NewVersion(strings.TrimSpace(v))
	if err != nil {
		return false
	}
	want, err := version.NewVersion(minimum)
	if err != nil {
		return false
	}
	return have.GreaterThanOrEqual(want)
}

// ValidVersion reports whether s parses as a version.
func ValidVersion(s string) bool {
	_, err := version.NewVersion(s)
	return err == nil
}

// Has reports whether a mod with the given id is present.
func Has(mods []Descriptor, id string) bool {
	for _, m := range mods {
		if m.ID == id {
			return true
		}
	}
	return false
}

// HasAtLeast reports whether a mod with the given id is present at or above minimum.
func HasAtLeast(mods []Descriptor, id, minimum string) bool {
	for _, m := range mods {
		if m.ID == id && AtLeast(m.Version, minimum) {
			return true
		}
	}
	return false
}
