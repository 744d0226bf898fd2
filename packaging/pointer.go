package packaging

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	pointerDir  = "speedrunigt"
	pointerFile = "latest_world.json"
)

// PointerSource resolves the world most recently played on this machine.
// ok is false when no usable pointer exists; err is reserved for I/O
// failures and malformed documents.
type PointerSource interface {
	LatestWorld() (path string, ok bool, err error)
}

// PointerFile reads the latest-world document written by the in-game timer mod.
type PointerFile struct {
	Path string
}

// DefaultPointerPath returns <home>/speedrunigt/latest_world.json.
func DefaultPointerPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, pointerDir, pointerFile)
}

type latestWorldDoc struct {
	WorldPath *string `json:"world_path"`
}

// LatestWorld implements PointerSource.
func (p PointerFile) LatestWorld() (string, bool, error) {
	data, err := os.ReadFile(p.Path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Debugf("latest world pointer %s does not exist", p.Path)
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading latest world pointer: %w", err)
	}

	var doc latestWorldDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", false, fmt.Errorf("parsing latest world pointer %s: %w", p.Path, err)
	}
	if doc.WorldPath == nil || *doc.WorldPath == "" {
		return "", false, nil
	}
	return filepath.Clean(*doc.WorldPath), true, nil
}
