package cli

import "strings"

// Flags holds parsed global flags. Empty string values mean "unset": the
// config file and built-in defaults fill them in later.
type Flags struct {
	Project string
	TscPath string
	Verbose int
	Version bool
	Help    bool
}

// ParseFlags extracts global flags from args and returns remaining args
// (the filter files/directories and any subcommand).
func ParseFlags(args []string) (Flags, []string) {
	var flags Flags
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-p" || arg == "--project":
			if i+1 < len(args) {
				flags.Project = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, "--project="):
			flags.Project = strings.TrimPrefix(arg, "--project=")
		case arg == "--tsc-path":
			if i+1 < len(args) {
				flags.TscPath = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, "--tsc-path="):
			flags.TscPath = strings.TrimPrefix(arg, "--tsc-path=")
		case arg == "-vv":
			flags.Verbose = 2
		case arg == "-v":
			if flags.Verbose < 1 {
				flags.Verbose = 1
			}
		case arg == "--version":
			flags.Version = true
		case arg == "--help" || arg == "-h":
			flags.Help = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return flags, remaining
}
