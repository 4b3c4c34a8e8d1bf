package cli

import (
	"fmt"
	"os"

	"github.com/falleng0d/tscx/internal/config"
	"github.com/falleng0d/tscx/internal/display"
	"github.com/falleng0d/tscx/internal/engine"
	"github.com/falleng0d/tscx/internal/initcmd"
	"github.com/falleng0d/tscx/internal/tee"
	"github.com/falleng0d/tscx/internal/tracking"
)

const version = "0.1.0"

// Run is the main entry point. Returns exit code.
func Run(args []string) int {
	flags, remaining := ParseFlags(args[1:])

	if flags.Version {
		fmt.Printf("tscx v%s\n", version)
		return 0
	}
	if flags.Help {
		printUsage()
		return 0
	}

	// Built-in commands. A filter file that happens to share a command
	// name can be forced with an explicit path, e.g. ./history.
	if len(remaining) > 0 {
		switch remaining[0] {
		case "check":
			// Alias for the bare invocation, same semantics.
			return runCheck(flags, remaining[1:])

		case "history":
			tracker, err := openTracker()
			if err != nil {
				display.PrintError(err.Error())
				return 1
			}
			defer tracker.Close()
			if err := display.RunHistory(tracker, remaining[1:]); err != nil {
				display.PrintError(err.Error())
				return 1
			}
			return 0

		case "config":
			cfg, err := config.Load()
			if err != nil {
				display.PrintError(err.Error())
				return 1
			}
			fmt.Printf("check.project: %s\n", cfg.Check.Project)
			fmt.Printf("check.tsc_path: %s\n", cfg.Check.TscPath)
			fmt.Printf("display.color: %v\n", cfg.Display.Color)
			fmt.Printf("tracking.db_path: %s\n", cfg.Tracking.DBPath)
			fmt.Printf("tee.mode: %s\n", cfg.Tee.Mode)
			fmt.Printf("tee.max_files: %d\n", cfg.Tee.MaxFiles)
			return 0

		case "init":
			if err := initcmd.Run(remaining[1:]); err != nil {
				display.PrintError(err.Error())
				return 1
			}
			return 0
		}
	}

	return runCheck(flags, remaining)
}

// runCheck runs the type check with remaining args as filter files. An empty
// filter list shows every diagnostic.
func runCheck(flags Flags, files []string) int {
	cfg, err := config.Load()
	if err != nil {
		if flags.Verbose > 0 {
			fmt.Fprintf(os.Stderr, "tscx: config error: %v, using defaults\n", err)
		}
		cfg = config.DefaultConfig()
	}

	project := cfg.Check.Project
	if flags.Project != "" {
		project = flags.Project
	}
	tscPath := cfg.Check.TscPath
	if flags.TscPath != "" {
		tscPath = flags.TscPath
	}

	tracker, err := openTracker()
	if err != nil && flags.Verbose > 0 {
		fmt.Fprintf(os.Stderr, "tscx: tracking disabled: %v\n", err)
	}
	if tracker != nil {
		defer tracker.Close()
	}

	teeCfg := tee.DefaultConfig()
	teeCfg.Enabled = cfg.Tee.Enabled
	teeCfg.Mode = cfg.Tee.Mode
	teeCfg.MaxFiles = cfg.Tee.MaxFiles
	teeCfg.MaxFileSize = cfg.Tee.MaxFileSize

	pipeline := &engine.Pipeline{
		Tracker:   tracker,
		TeeConfig: teeCfg,
		Verbose:   flags.Verbose,
	}

	return pipeline.Run(project, tscPath, files)
}

func openTracker() (*tracking.Tracker, error) {
	cfg, _ := config.Load()
	dbPath := tracking.DBPath("")
	if cfg != nil {
		dbPath = tracking.DBPath(cfg.Tracking.DBPath)
	}
	return tracking.NewTracker(dbPath)
}

func printUsage() {
	usage := `tscx v%s — filtered TypeScript type checking

Usage: tscx [flags] [files...]

Runs tsc --noEmit over the project and shows only the diagnostics that
belong to the given files or directories. With no files, every diagnostic
is shown. Exits 1 when any diagnostic was shown.

Commands:
  check        Run the type check (same as the bare invocation)
  history      Show recorded check runs (--daily, --json, --csv, -n N)
  config       Show current configuration
  init         Install a git pre-commit hook running tscx

Flags:
  -p, --project <dir>    TypeScript project directory (default: .)
  --tsc-path <path>      Compiler path (default: node_modules/.bin/tsc,
                         falls back to tsc on PATH)
  -v, -vv                Verbose output
  --version              Show version
  --help                 Show this help

Examples:
  tscx src/server.ts
  tscx src/ lib/utils.ts
  tscx -p packages/api
  tscx history --daily
`
	fmt.Printf(usage, version)
}

// Version returns the current version string.
func Version() string {
	return version
}
