package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/speedrun-tools/runpack/packaging"
)

// parseMode maps a --mode value to a packaging.Mode. Empty means auto.
func parseMode(name string) (packaging.Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return packaging.ModeAuto, nil
	}
	if packaging.IsValidMode(name) {
		return packaging.Mode(name), nil
	}
	if s := suggestMode(name); s != "" {
		return "", fmt.Errorf("unknown mode %q, did you mean %q?", name, s)
	}
	return "", fmt.Errorf("unknown mode %q (valid: %s)", name, strings.Join(modeNames(), ", "))
}

// suggestMode returns the closest valid mode within an edit distance of 3.
func suggestMode(name string) string {
	best, bestDist := "", 4
	for _, m := range modeNames() {
		if d := levenshtein.ComputeDistance(name, m); d < bestDist {
			best, bestDist = m, d
		}
	}
	return best
}

func modeNames() []string {
	names := make([]string, 0, len(packaging.ValidModes))
	for m := range packaging.ValidModes {
		names = append(names, string(m))
	}
	sort.Strings(names)
	return names
}
