package initcmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const hookMarker = "# tscx pre-commit hook"

const hookScript = `#!/bin/sh
` + hookMarker + `
# Blocks commits when the TypeScript type check fails.

exec tscx
`

const starterConfig = `# tscx configuration

[check]
project = "."
tsc_path = "node_modules/.bin/tsc"

[display]
color = true

[tee]
enabled = true
mode = "failures"
max_files = 20
`

// Run installs the tscx git integration: a pre-commit hook in the current
// repository and a starter config file if none exists yet.
func Run(args []string) error {
	for _, arg := range args {
		if arg == "--uninstall" {
			return Uninstall()
		}
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}

	hookPath, err := installHook(root)
	if err != nil {
		return err
	}
	fmt.Printf("installed pre-commit hook: %s\n", hookPath)

	cfgPath, wrote, err := writeStarterConfig()
	if err != nil {
		return err
	}
	if wrote {
		fmt.Printf("wrote starter config: %s\n", cfgPath)
	}

	return nil
}

// Uninstall removes the pre-commit hook if tscx installed it.
func Uninstall() error {
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}

	hookPath := filepath.Join(root, ".git", "hooks", "pre-commit")
	data, err := os.ReadFile(hookPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read hook: %w", err)
	}
	if !strings.Contains(string(data), hookMarker) {
		return fmt.Errorf("pre-commit hook was not installed by tscx, not removing")
	}
	if err := os.Remove(hookPath); err != nil {
		return fmt.Errorf("remove hook: %w", err)
	}
	fmt.Println("removed pre-commit hook")
	return nil
}

// installHook writes the pre-commit hook into root's git repository. It
// refuses to overwrite a hook it did not write itself.
func installHook(root string) (string, error) {
	gitDir := filepath.Join(root, ".git")
	if info, err := os.Stat(gitDir); err != nil || !info.IsDir() {
		return "", fmt.Errorf("not a git repository: %s", root)
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return "", fmt.Errorf("create hooks dir: %w", err)
	}

	hookPath := filepath.Join(hooksDir, "pre-commit")
	if data, err := os.ReadFile(hookPath); err == nil {
		if !strings.Contains(string(data), hookMarker) {
			return "", fmt.Errorf("pre-commit hook already exists: %s", hookPath)
		}
	}

	if err := os.WriteFile(hookPath, []byte(hookScript), 0755); err != nil {
		return "", fmt.Errorf("write hook: %w", err)
	}
	return hookPath, nil
}

// writeStarterConfig writes a default config file unless one already exists.
func writeStarterConfig() (string, bool, error) {
	path := configPath()
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", false, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0644); err != nil {
		return "", false, fmt.Errorf("write config: %w", err)
	}
	return path, true, nil
}

func configPath() string {
	if p := os.Getenv("TSCX_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "tscx", "config.toml")
}
