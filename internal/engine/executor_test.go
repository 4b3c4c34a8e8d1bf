package engine

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// chdir is t.Chdir for Go versions before 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

// writeStubCompiler writes a shell script that mimics tsc output.
func writeStubCompiler(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("skip on windows")
	}
	path := filepath.Join(t.TempDir(), "fake-tsc")
	script := "#!/bin/sh\n" + body
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveCompilerCustomPathUnchanged(t *testing.T) {
	if got := ResolveCompiler("/opt/tsc/bin/tsc"); got != "/opt/tsc/bin/tsc" {
		t.Errorf("got %q", got)
	}
}

func TestResolveCompilerDefaultFallsBack(t *testing.T) {
	chdir(t, t.TempDir())
	if got := ResolveCompiler(DefaultCompilerPath); got != "tsc" {
		t.Errorf("got %q, want global tsc fallback", got)
	}
}

func TestResolveCompilerDefaultExists(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.MkdirAll(filepath.Join(dir, "node_modules", ".bin"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, DefaultCompilerPath), []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	if got := ResolveCompiler(DefaultCompilerPath); got != DefaultCompilerPath {
		t.Errorf("got %q, want local path kept", got)
	}
}

func TestExecuteCapturesOutput(t *testing.T) {
	stub := writeStubCompiler(t, "echo 'src/a.ts(1,1): error TS1: x'\necho 'to stderr' >&2\nexit 2\n")

	result, err := Execute(stub, ".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ExitCode != 2 {
		t.Errorf("exit code = %d, want 2", result.ExitCode)
	}
	if got := strings.TrimSpace(result.Stdout); got != "src/a.ts(1,1): error TS1: x" {
		t.Errorf("stdout = %q", got)
	}
	if got := strings.TrimSpace(result.Stderr); got != "to stderr" {
		t.Errorf("stderr = %q", got)
	}
	if result.Duration <= 0 {
		t.Error("duration should be positive")
	}
}

func TestExecuteCleanRun(t *testing.T) {
	stub := writeStubCompiler(t, "exit 0\n")

	result, err := Execute(stub, ".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ExitCode != 0 {
		t.Errorf("exit code = %d", result.ExitCode)
	}
	if result.Stdout != "" || result.Stderr != "" {
		t.Errorf("expected no output, got %q / %q", result.Stdout, result.Stderr)
	}
}

func TestExecuteLaunchFailure(t *testing.T) {
	_, err := Execute("/nonexistent/path/to/tsc", ".")
	if err == nil {
		t.Fatal("expected error for missing compiler")
	}
}
