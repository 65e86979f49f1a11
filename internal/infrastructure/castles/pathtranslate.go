// Package castles implements the filesystem-backed castle resolver: it
// enumerates the configured root directory, filters entries through the
// access gate, and decorates them with per-directory settings.json
// metadata.
package castles

import (
	"regexp"
	"strings"
)

// drivePathPattern matches Windows drive-letter paths like `C:\bots\data`
// or `C:/bots/data`.
var drivePathPattern = regexp.MustCompile(`^([A-Za-z]):[\\/](.*)$`)

// TranslatePath rewrites a drive-letter path to its POSIX mount
// equivalent: `X:\a\b` becomes `/mnt/x/a/b`, lower-casing the drive
// letter. Paths that are not in drive-letter syntax pass through
// unchanged.
func TranslatePath(path string) string {
	m := drivePathPattern.FindStringSubmatch(path)
	if m == nil {
		return path
	}

	drive := strings.ToLower(m[1])
	rest := strings.ReplaceAll(m[2], `\`, "/")
	if rest == "" {
		return "/mnt/" + drive
	}
	return "/mnt/" + drive + "/" + rest
}
