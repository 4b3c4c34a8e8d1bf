package engine

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"
)

// DefaultCompilerPath is the project-local tsc shim npm installs.
const DefaultCompilerPath = "node_modules/.bin/tsc"

// Result holds the captured output of one compiler invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// ResolveCompiler picks the tsc executable to run. When the caller left the
// default project-local path and nothing is installed there, fall back to a
// PATH lookup of the global tsc.
func ResolveCompiler(tscPath string) string {
	if tscPath == DefaultCompilerPath {
		if _, err := os.Stat(tscPath); err != nil {
			return "tsc"
		}
	}
	return tscPath
}

// Execute runs tsc --noEmit against the project, capturing stdout and stderr
// concurrently via goroutines. A non-zero compiler exit is not an error —
// that is how tsc reports diagnostics. Only a failure to launch the process
// returns err.
func Execute(tscPath, project string) (*Result, error) {
	start := time.Now()

	cmd := exec.Command(tscPath, "--noEmit", "-p", project)
	// Stdin stays disconnected: tsc never reads it, and leaving it open
	// would block when tscx itself runs under a hook.

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start compiler: %w", err)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_, _ = stdoutBuf.ReadFrom(stdoutPipe)
	}()
	go func() {
		defer wg.Done()
		_, _ = stderrBuf.ReadFrom(stderrPipe)
	}()

	wg.Wait()

	exitCode := 0
	err = cmd.Wait()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			return nil, fmt.Errorf("wait compiler: %w", err)
		}
	}

	return &Result{
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		ExitCode: exitCode,
		Duration: time.Since(start),
	}, nil
}
