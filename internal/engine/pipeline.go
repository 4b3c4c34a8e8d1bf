package engine

import (
	"fmt"
	"os"
	"strings"

	"github.com/falleng0d/tscx/internal/display"
	"github.com/falleng0d/tscx/internal/filter"
	"github.com/falleng0d/tscx/internal/tee"
	"github.com/falleng0d/tscx/internal/tracking"
	"github.com/falleng0d/tscx/internal/utils"
)

// Pipeline orchestrates one check: build the filter set, run the compiler,
// scan its output, emit the surviving diagnostics, and record the run.
type Pipeline struct {
	Tracker   *tracking.Tracker
	TeeConfig tee.Config
	Verbose   int
}

// Run executes a type check of project and returns the exit status: 0 when
// no diagnostic record survived filtering, 1 when at least one did or the
// compiler could not be launched. The compiler's own exit code is consulted
// only to detect launch failure — the final status is recomputed from what
// survives filtering.
func (p *Pipeline) Run(project, tscPath string, files []string) int {
	pwd, err := os.Getwd()
	if err != nil {
		pwd = "."
	}
	fset := filter.New(pwd, files)

	timed := tracking.Start(p.Tracker)

	result, err := Execute(ResolveCompiler(tscPath), project)
	if err != nil {
		display.PrintError(fmt.Sprintf("Error running TypeScript compiler: %v", err))
		return 1
	}

	// Stdout lines first, then stderr lines — concatenation, not
	// interleaving, matching how tsc splits its reporting.
	combined := combineOutput(result.Stdout, result.Stderr)

	lines, status := filter.Scan(combined, fset)
	for _, line := range lines {
		fmt.Fprintln(os.Stderr, line)
	}

	total := utils.CountLines(combined)
	hidden := len(lines) < total
	if hint := tee.MaybeSave(combined, status, hidden, project, p.TeeConfig); hint != "" {
		fmt.Fprintln(os.Stderr, hint)
	}

	if p.Verbose > 0 {
		display.PrintDim(fmt.Sprintf("tscx: %d of %d lines shown", len(lines), total))
	}

	if err := timed.Track(project, strings.Join(files, " "), len(lines), total, status); err != nil {
		if p.Verbose > 0 {
			fmt.Fprintf(os.Stderr, "tscx: tracking error: %v\n", err)
		}
	}

	return status
}

func combineOutput(stdout, stderr string) string {
	if stdout != "" && !strings.HasSuffix(stdout, "\n") {
		stdout += "\n"
	}
	return stdout + stderr
}
