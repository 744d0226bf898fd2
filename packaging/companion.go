package packaging

import (
	"errors"

	"github.com/speedrun-tools/runpack/packaging/modinfo"
)

// ErrInstrumentationOutdated is returned by DetectMode when the companion mod
// is installed without a recent enough timer mod to record world pointers.
var ErrInstrumentationOutdated = errors.New("companion mod installed without a supported timer mod")

// CompanionRequirement names the mods that switch selection into companion mode.
type CompanionRequirement struct {
	ModID                string
	InstrumentationModID string
	MinVersion           string
}

// DefaultCompanionRequirement matches SeedQueue paired with SpeedRunIGT 14.0 or newer.
func DefaultCompanionRequirement() CompanionRequirement {
	return CompanionRequirement{
		ModID:                "seedqueue",
		InstrumentationModID: "speedrunigt",
		MinVersion:           "14.0",
	}
}

// ModSource lists the mods installed in a mods folder.
type ModSource interface {
	Mods(modsDir string) ([]modinfo.Descriptor, error)
}

// JarModSource reads fabric manifests out of mod jars.
type JarModSource struct{}

// Mods reads the manifest of every jar in modsDir.
func (JarModSource) Mods(modsDir string) ([]modinfo.Descriptor, error) {
	return modinfo.ReadFolder(modsDir)
}

// DetectMode resolves ModeCompanion or ModeStandard from the installed mods.
// There is no fallback to ModeStandard when the instrumentation check fails.
func DetectMode(mods []modinfo.Descriptor, req CompanionRequirement) (Mode, error) {
	if !modinfo.Has(mods, req.ModID) {
		return ModeStandard, nil
	}
	if !modinfo.HasAtLeast(mods, req.InstrumentationModID, req.MinVersion) {
		return "", ErrInstrumentationOutdated
	}
	return ModeCompanion, nil
}
