package packaging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	savesDirName = "saves"
	logsDirName  = "logs"
	modsDirName  = "mods"

	// PackagesDirName is the folder under the output root holding every submission.
	PackagesDirName = "submissionpackages"
	worldsOutName   = "Worlds"
	logsOutName     = "Logs"

	// SubmissionFormURL is where runners upload the finished package.
	SubmissionFormURL = "https://forms.gle/v7oPXfjfi7553jkp7"

	rulesHint     = "Please refer to the speedrun.com rules to submit files yourself."
	lockedMessage = "Cannot package files - a world appears to be open! Please press Options > Stop Resets & Quit in your instance."
	lockedTitle   = "Package Files Error"
)

// Notifier shows a blocking alert to the user.
type Notifier interface {
	Alert(title, message string)
}

// Config holds assembler settings.
type Config struct {
	OutputRoot string // application data root; packages go under OutputRoot/submissionpackages
	MaxWorlds  int    // world cap in standard mode
	MaxLogs    int    // log cap in every mode
	Mode       Mode
	Companion  CompanionRequirement
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig(outputRoot string) Config {
	return Config{
		OutputRoot: outputRoot,
		MaxWorlds:  6,
		MaxLogs:    6,
		Mode:       ModeAuto,
		Companion:  DefaultCompanionRequirement(),
	}
}

// Plan is what a submission for an instance would contain.
type Plan struct {
	Mode   Mode
	Worlds []string
	Logs   []string
}

// Assembler builds submission packages. It is not safe for concurrent
// PrepareSubmission calls that resolve to the same second.
type Assembler struct {
	cfg      Config
	mods     ModSource
	pointer  PointerSource
	notifier Notifier

	now      func() time.Time
	copyInto func(src, destDir string) error
}

// NewAssembler creates an Assembler. A nil notifier discards alerts.
func NewAssembler(cfg Config, mods ModSource, pointer PointerSource, notifier Notifier) *Assembler {
	return &Assembler{
		cfg:      cfg,
		mods:     mods,
		pointer:  pointer,
		notifier: notifier,
		now:      time.Now,
		copyInto: copyInto,
	}
}

// SubmissionFolderName formats t as "Submission (YYYY-MM-DD HH-MM-SS)".
func SubmissionFolderName(t time.Time) string {
	name := "Submission (" + t.Format("2006/01/02 15:04:05") + ")"
	return strings.NewReplacer(":", "-", "/", "-").Replace(name)
}

// Plan validates the instance layout and selects worlds and logs.
// A nil plan with a nil error means the instance cannot be packaged; the
// reason has already been logged.
func (a *Assembler) Plan(instancePath string) (*Plan, error) {
	// The latest-world pointer is absolute; listings must be too.
	instancePath, err := filepath.Abs(instancePath)
	if err != nil {
		return nil, fmt.Errorf("resolving instance path: %w", err)
	}
	savesPath := filepath.Join(instancePath, savesDirName)
	if !isDir(savesPath) {
		logrus.Errorf("Saves path for instance not found! %s", rulesHint)
		return nil, nil
	}
	logsPath := filepath.Join(instancePath, logsDirName)
	if !isDir(logsPath) {
		logrus.Errorf("Logs path for instance not found! %s", rulesHint)
		return nil, nil
	}

	mode, err := a.resolveMode(instancePath)
	if errors.Is(err, ErrInstrumentationOutdated) {
		logrus.Errorf("SeedQueue detected without an updated SpeedRunIGT! %s", rulesHint)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	strategy := NewSelectionStrategy(mode, a.pointer)
	worlds, err := strategy.SelectWorlds(savesPath)
	if err != nil {
		return nil, err
	}
	if len(worlds) == 0 {
		logrus.Errorf("No worlds found! %s", rulesHint)
		if mode == ModeCompanion {
			logrus.Error("(You are using SeedQueue, so this may be because you selected the wrong instance to package, or your SpeedRunIGT might be out of date!)")
		}
		return nil, nil
	}
	if mode == ModeStandard {
		worlds = capped(worlds, a.cfg.MaxWorlds)
	}

	logs, err := recentFiles(logsPath, a.cfg.MaxLogs)
	if err != nil {
		return nil, err
	}
	return &Plan{Mode: mode, Worlds: worlds, Logs: logs}, nil
}

func (a *Assembler) resolveMode(instancePath string) (Mode, error) {
	if a.cfg.Mode != "" && a.cfg.Mode != ModeAuto {
		logrus.Debugf("selection mode forced to %s", a.cfg.Mode)
		return a.cfg.Mode, nil
	}
	mods, err := a.mods.Mods(filepath.Join(instancePath, modsDirName))
	if err != nil {
		return "", err
	}
	mode, err := DetectMode(mods, a.cfg.Companion)
	if err != nil {
		return "", err
	}
	if mode == ModeCompanion {
		logrus.Debug("SeedQueue detected, using SeedQueue world selection.")
	}
	return mode, nil
}

// PrepareSubmission copies the selected worlds and recent logs of the
// instance into a fresh timestamped folder and zips both halves. It returns
// the folder path, or "" with a nil error when no package was produced.
// Archive failures are logged only; the folder alone is a valid submission.
func (a *Assembler) PrepareSubmission(instancePath string) (string, error) {
	plan, err := a.Plan(instancePath)
	if err != nil || plan == nil {
		return "", err
	}

	submissionPath := filepath.Join(a.cfg.OutputRoot, PackagesDirName, SubmissionFolderName(a.now()))
	if err := os.MkdirAll(submissionPath, 0o755); err != nil {
		return "", fmt.Errorf("creating submission folder: %w", err)
	}
	logrus.Info("Created folder for submission.")

	worldsDest := filepath.Join(submissionPath, worldsOutName)
	if err := os.MkdirAll(worldsDest, 0o755); err != nil {
		return "", fmt.Errorf("creating worlds folder: %w", err)
	}
	for _, w := range plan.Worlds {
		logrus.Infof("Copying %s to submission folder...", filepath.Base(w))
		if err := a.copyInto(w, worldsDest); err != nil {
			if errors.Is(err, ErrWorldLocked) {
				if a.notifier != nil {
					a.notifier.Alert(lockedTitle, lockedMessage)
				}
				logrus.Errorf("%s (%v)", lockedMessage, err)
				return "", nil
			}
			return "", fmt.Errorf("copying world %s: %w", filepath.Base(w), err)
		}
	}

	logsDest := filepath.Join(submissionPath, logsOutName)
	if err := os.MkdirAll(logsDest, 0o755); err != nil {
		return "", fmt.Errorf("creating logs folder: %w", err)
	}
	for _, l := range plan.Logs {
		logrus.Infof("Copying %s to submission folder...", filepath.Base(l))
		if err := a.copyInto(l, logsDest); err != nil {
			return "", fmt.Errorf("copying log %s: %w", filepath.Base(l), err)
		}
	}

	for _, name := range []string{worldsOutName, logsOutName} {
		zipPath := filepath.Join(submissionPath, name+".zip")
		if err := BuildArchive(zipPath, filepath.Join(submissionPath, name)); err != nil {
			logrus.Errorf("Error while copying folder to zip %s: %v", zipPath, err)
		}
	}

	logrus.Infof("Saved submission files for instance to %s.", submissionPath)
	logrus.Infof("Please submit a download link to your files through this form: %s", SubmissionFormURL)
	return submissionPath, nil
}

// recentFiles returns up to limit regular files in dir, most recent first.
func recentFiles(dir string, limit int) ([]string, error) {
	entries, err := ListByRecency(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, p := range entries {
		if len(files) == limit {
			break
		}
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			files = append(files, p)
		}
	}
	return files, nil
}

func capped(paths []string, limit int) []string {
	if limit >= 0 && len(paths) > limit {
		return paths[:limit]
	}
	return paths
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
