package common

import (
	"path"
	"strings"
)

// UnknownStr is the String() value of enum members outside their known range.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty. Major version suffixes are skipped,
// so "github.com/knadh/koanf/v2" yields "koanf".
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) {
		if parent := path.Dir(pkgPath); parent != "." && parent != "/" {
			base = path.Base(parent)
		}
	}

	return strings.NewReplacer("-", "", ".", "").Replace(base)
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}

	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
