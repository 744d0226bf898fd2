package packaging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Mode names a world selection policy.
type Mode string

const (
	// ModeAuto picks ModeCompanion when the companion mod is installed, ModeStandard otherwise.
	ModeAuto Mode = "auto"
	// ModeStandard selects worlds by modification time.
	ModeStandard Mode = "standard"
	// ModeCompanion selects worlds by attempt number relative to the latest-world pointer.
	ModeCompanion Mode = "companion"
)

// ValidModes is the set of recognized mode names.
var ValidModes = map[Mode]bool{ModeAuto: true, ModeStandard: true, ModeCompanion: true}

// IsValidMode returns true if name is a recognized mode.
func IsValidMode(name string) bool {
	return ValidModes[Mode(name)]
}

// priorAttempts is how many attempts before the latest one are kept in companion mode.
const priorAttempts = 5

// SelectionStrategy decides which world directories belong in a submission.
// An empty result means no suitable worlds were found.
type SelectionStrategy interface {
	SelectWorlds(savesDir string) ([]string, error)
	Mode() Mode
}

// StandardSelection returns every world, most recently modified first.
// Callers cap the result.
type StandardSelection struct{}

// Mode implements SelectionStrategy.
func (StandardSelection) Mode() Mode { return ModeStandard }

// SelectWorlds lists savesDir by recency.
func (StandardSelection) SelectWorlds(savesDir string) ([]string, error) {
	return ListByRecency(savesDir)
}

// CompanionSelection is used when worlds are pre-generated in the background,
// so modification order says nothing about play order. The attempt number
// embedded in the world name is authoritative instead.
type CompanionSelection struct {
	Pointer PointerSource
}

// Mode implements SelectionStrategy.
func (CompanionSelection) Mode() Mode { return ModeCompanion }

// SelectWorlds returns every numbered world whose attempt number is at most
// five below the pointer world's, in recency order. It returns an empty
// result when the pointer is missing, points outside savesDir, or names an
// unnumbered world.
func (c CompanionSelection) SelectWorlds(savesDir string) ([]string, error) {
	latest, ok, err := c.Pointer.LatestWorld()
	if err != nil {
		return nil, err
	}
	if !ok {
		logrus.Debug("no latest world recorded")
		return nil, nil
	}

	worlds, err := ListByRecency(savesDir)
	if err != nil {
		return nil, err
	}
	if !containsPath(worlds, latest) {
		logrus.Debugf("latest world %s is not in %s", latest, savesDir)
		return nil, nil
	}

	latestNum, ok := attemptOf(latest)
	if !ok {
		logrus.Debugf("latest world %q is not a numbered attempt", filepath.Base(latest))
		return nil, nil
	}
	minimum := latestNum - priorAttempts

	selected := make([]string, 0, priorAttempts+1)
	for _, w := range worlds {
		if n, ok := attemptOf(w); ok && n >= minimum {
			selected = append(selected, w)
		}
	}
	return selected, nil
}

// containsPath matches by file identity so differently spelled or symlinked
// paths to the same world compare equal. Cleaned string equality is used
// when target cannot be stat'ed.
func containsPath(paths []string, target string) bool {
	target = filepath.Clean(target)
	targetInfo, targetErr := os.Stat(target)
	for _, p := range paths {
		if targetErr == nil {
			if info, err := os.Stat(p); err == nil && os.SameFile(info, targetInfo) {
				return true
			}
		}
		if filepath.Clean(p) == target {
			return true
		}
	}
	return false
}

// NewSelectionStrategy creates a strategy for a resolved mode.
// Panics on ModeAuto or unrecognized modes; resolve those first.
func NewSelectionStrategy(mode Mode, pointer PointerSource) SelectionStrategy {
	switch mode {
	case ModeStandard:
		return StandardSelection{}
	case ModeCompanion:
		return CompanionSelection{Pointer: pointer}
	default:
		panic(fmt.Sprintf("unhandled selection mode %q", mode))
	}
}
