// Package modinfo lists the mods installed in an instance's mods folder.
package modinfo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/sirupsen/logrus"
)

const manifestName = "fabric.mod.json"

// Descriptor identifies one installed mod.
type Descriptor struct {
	ID      string `json:"id"`
	Version string `json:"version"`
}

// ReadFolder returns the descriptor of every readable mod jar in dir, sorted by file name.
// A missing folder yields no descriptors.
func ReadFolder(dir string) ([]Descriptor, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("modinfo: reading %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var out []Descriptor
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".jar") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		d, err := ReadJar(path)
		if err != nil {
			logrus.Debugf("skipping mod %s: %v", e.Name(), err)
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// ReadJar reads the fabric.mod.json manifest at the root of a mod jar.
func ReadJar(path string) (Descriptor, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return Descriptor{}, err
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != manifestName {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return Descriptor{}, err
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return Descriptor{}, err
		}
		var d Descriptor
		if err := json.Unmarshal(data, &d); err != nil {
			return Descriptor{}, fmt.Errorf("parsing %s: %w", manifestName, err)
		}
		if d.ID == "" {
			return Descriptor{}, fmt.Errorf("%s has no id", manifestName)
		}
		return d, nil
	}
	return Descriptor{}, fmt.Errorf("no %s", manifestName)
}
