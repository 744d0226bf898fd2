package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/speedrun-tools/runpack/packaging"
	"github.com/speedrun-tools/runpack/packaging/modinfo"
)

const appDirName = "runpack"

// CompanionConfig names the mods that enable companion-mode world selection.
type CompanionConfig struct {
	ModID                     string `yaml:"mod_id" toml:"mod_id"`
	InstrumentationModID      string `yaml:"instrumentation_mod_id" toml:"instrumentation_mod_id"`
	MinInstrumentationVersion string `yaml:"min_instrumentation_version" toml:"min_instrumentation_version"`
}

// FileConfig represents the full runpack config file (YAML, or TOML by extension).
// All top-level sections must be listed to satisfy strict parsing.
type FileConfig struct {
	OutputRoot      string          `yaml:"output_root" toml:"output_root"`
	LatestWorldPath string          `yaml:"latest_world_path" toml:"latest_world_path"`
	MaxWorlds       int             `yaml:"max_worlds" toml:"max_worlds"`
	MaxLogs         int             `yaml:"max_logs" toml:"max_logs"`
	Mode            string          `yaml:"mode" toml:"mode"`
	Companion       CompanionConfig `yaml:"companion" toml:"companion"`
}

func defaultFileConfig() FileConfig {
	def := packaging.DefaultConfig(defaultOutputRoot())
	return FileConfig{
		OutputRoot:      def.OutputRoot,
		LatestWorldPath: packaging.DefaultPointerPath(),
		MaxWorlds:       def.MaxWorlds,
		MaxLogs:         def.MaxLogs,
		Mode:            string(def.Mode),
		Companion: CompanionConfig{
			ModID:                     def.Companion.ModID,
			InstrumentationModID:      def.Companion.InstrumentationModID,
			MinInstrumentationVersion: def.Companion.MinVersion,
		},
	}
}

// defaultOutputRoot is the per-user application data root.
func defaultOutputRoot() string {
	root, err := os.UserConfigDir()
	if err != nil || root == "" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "."+appDirName)
	}
	return filepath.Join(root, appDirName)
}

// loadFileConfig overlays the file at path onto the defaults. An empty path
// returns the defaults. Unknown keys are errors.
func loadFileConfig(path string) (FileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("parsing config %s: unknown keys %v", path, undecoded)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks limits, mod ids and the minimum version.
func (c FileConfig) Validate() error {
	if c.OutputRoot == "" {
		return fmt.Errorf("output_root must not be empty")
	}
	if c.MaxWorlds < 1 {
		return fmt.Errorf("max_worlds must be at least 1, got %d", c.MaxWorlds)
	}
	if c.MaxLogs < 1 {
		return fmt.Errorf("max_logs must be at least 1, got %d", c.MaxLogs)
	}
	if c.Companion.ModID == "" || c.Companion.InstrumentationModID == "" {
		return fmt.Errorf("companion mod ids must not be empty")
	}
	if !modinfo.ValidVersion(c.Companion.MinInstrumentationVersion) {
		return fmt.Errorf("invalid min_instrumentation_version %q", c.Companion.MinInstrumentationVersion)
	}
	if _, err := parseMode(c.Mode); err != nil {
		return err
	}
	return nil
}

// assemblerConfig converts a validated FileConfig.
func (c FileConfig) assemblerConfig() packaging.Config {
	mode, _ := parseMode(c.Mode)
	return packaging.Config{
		OutputRoot: c.OutputRoot,
		MaxWorlds:  c.MaxWorlds,
		MaxLogs:    c.MaxLogs,
		Mode:       mode,
		Companion: packaging.CompanionRequirement{
			ModID:                c.Companion.ModID,
			InstrumentationModID: c.Companion.InstrumentationModID,
			MinVersion:           c.Companion.MinInstrumentationVersion,
		},
	}
}
