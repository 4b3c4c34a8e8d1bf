package filter

import (
	"os"
	"path"
	"strings"
)

// FilterSet is the normalized form of the caller's filter arguments. File
// arguments match diagnostics by basename; directory arguments match by path
// prefix or path segment. An empty FilterSet matches every diagnostic.
type FilterSet struct {
	exactFiles   map[string]struct{}
	pathPrefixes []string
}

// New builds a FilterSet from raw filter arguments, each normalized against
// pwd. An argument naming an existing directory becomes a path-prefix filter;
// anything else becomes a basename filter, including paths that do not exist
// yet (a filter for a not-yet-created file degrades to basename matching).
// Each argument lands in exactly one of the two collections.
func New(pwd string, args []string) *FilterSet {
	fs := &FilterSet{exactFiles: make(map[string]struct{})}
	sep := string(os.PathSeparator)
	for _, arg := range args {
		key := arg
		if strings.HasPrefix(arg, pwd+sep) {
			key = arg[len(pwd)+len(sep):]
		} else if arg == pwd {
			key = ""
		}
		if info, err := os.Stat(arg); err == nil && info.IsDir() {
			fs.pathPrefixes = append(fs.pathPrefixes, key)
			continue
		}
		fs.exactFiles[path.Base(toSlash(key))] = struct{}{}
	}
	return fs
}

// MatchAll reports whether the set is empty, in which case every diagnostic
// record is shown.
func (fs *FilterSet) MatchAll() bool {
	return len(fs.exactFiles) == 0 && len(fs.pathPrefixes) == 0
}

// Match reports whether a diagnostic for filePath should be shown. filePath
// is the token extracted from a compiler header line; tsc emits it with
// forward slashes relative to the project root.
func (fs *FilterSet) Match(filePath string) bool {
	if fs.MatchAll() {
		return true
	}
	if _, ok := fs.exactFiles[path.Base(filePath)]; ok {
		return true
	}
	for _, prefix := range fs.pathPrefixes {
		if strings.HasPrefix(filePath, prefix) {
			return true
		}
		if strings.Contains("/"+filePath+"/", "/"+toSlash(prefix)+"/") {
			return true
		}
	}
	return false
}

func toSlash(p string) string {
	if os.PathSeparator == '/' {
		return p
	}
	return strings.ReplaceAll(p, string(os.PathSeparator), "/")
}
