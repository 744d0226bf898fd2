package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/speedrun-tools/runpack/packaging"
)

var (
	// CLI flags shared by every command
	logLevel        string // Log verbosity level
	configPath      string // Optional YAML/TOML config file
	instancePath    string // Game instance root (holds saves/, logs/, mods/)
	outputRoot      string // Application data root for submission packages
	latestWorldPath string // Latest-world pointer written by the timer mod
	modeName        string // auto, standard or companion
	maxWorlds       int    // World cap in standard mode
	maxLogs         int    // Log cap in every mode
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "runpack",
	Short: "Assemble speedrun submission packages from a game instance",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// packageCmd copies worlds and logs into a new submission folder
var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Build a submission package for an instance",
	Run: func(cmd *cobra.Command, args []string) {
		a := buildAssembler(cmd)
		ok, err := runPackage(a, instancePath, cmd.OutOrStdout())
		if err != nil {
			logrus.Fatalf("Packaging failed: %v", err)
		}
		if !ok {
			os.Exit(1)
		}
	},
}

// worldsCmd previews the selection without copying anything
var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "List the worlds and logs a package would contain",
	Run: func(cmd *cobra.Command, args []string) {
		a := buildAssembler(cmd)
		ok, err := runPreview(a, instancePath, cmd.OutOrStdout())
		if err != nil {
			logrus.Fatalf("Selection failed: %v", err)
		}
		if !ok {
			os.Exit(1)
		}
	},
}

// buildAssembler merges the config file with explicitly set flags.
func buildAssembler(cmd *cobra.Command) *packaging.Assembler {
	cfg, err := loadFileConfig(configPath)
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	flags := cmd.Flags()
	if flags.Changed("output-root") {
		cfg.OutputRoot = outputRoot
	}
	if flags.Changed("latest-world") {
		cfg.LatestWorldPath = latestWorldPath
	}
	if flags.Changed("mode") {
		cfg.Mode = modeName
	}
	if flags.Changed("max-worlds") {
		cfg.MaxWorlds = maxWorlds
	}
	if flags.Changed("max-logs") {
		cfg.MaxLogs = maxLogs
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	logrus.Debugf("output root %s, pointer %s, mode %s", cfg.OutputRoot, cfg.LatestWorldPath, cfg.Mode)

	return packaging.NewAssembler(
		cfg.assemblerConfig(),
		packaging.JarModSource{},
		packaging.PointerFile{Path: cfg.LatestWorldPath},
		newTerminalNotifier(),
	)
}

// runPackage reports false when no package was produced.
func runPackage(a *packaging.Assembler, instance string, out io.Writer) (bool, error) {
	path, err := a.PrepareSubmission(instance)
	if err != nil || path == "" {
		return false, err
	}
	fmt.Fprintln(out, path)
	return true, nil
}

func runPreview(a *packaging.Assembler, instance string, out io.Writer) (bool, error) {
	plan, err := a.Plan(instance)
	if err != nil || plan == nil {
		return false, err
	}
	fmt.Fprintf(out, "mode: %s\n", plan.Mode)
	fmt.Fprintf(out, "worlds (%d):\n", len(plan.Worlds))
	for _, w := range plan.Worlds {
		fmt.Fprintf(out, "  %s\n", w)
	}
	fmt.Fprintf(out, "logs (%d):\n", len(plan.Logs))
	for _, l := range plan.Logs {
		fmt.Fprintf(out, "  %s\n", l)
	}
	return true, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	pf.StringVar(&configPath, "config", "", "Path to a YAML or TOML config file")
	pf.StringVar(&instancePath, "instance", ".", "Game instance directory containing saves/ and logs/")
	pf.StringVar(&outputRoot, "output-root", "", "Application data root for submission packages")
	pf.StringVar(&latestWorldPath, "latest-world", "", "Path to the timer mod's latest_world.json")
	pf.StringVar(&modeName, "mode", "auto", "World selection mode (auto, standard, companion)")
	pf.IntVar(&maxWorlds, "max-worlds", 6, "Maximum worlds copied in standard mode")
	pf.IntVar(&maxLogs, "max-logs", 6, "Maximum log files copied")

	rootCmd.AddCommand(packageCmd)
	rootCmd.AddCommand(worldsCmd)
}
