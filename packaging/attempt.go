package packaging

import (
	"path/filepath"
	"regexp"
	"strconv"
)

// attemptPattern matches world names produced by automatic world naming,
// e.g. "Random Speedrun #1234".
var attemptPattern = regexp.MustCompile(`^.*Speedrun #(\d+)$`)

// ParseAttemptNumber extracts the attempt number from a world directory name.
// Names that do not follow the numbering convention report ok=false.
func ParseAttemptNumber(name string) (n int, ok bool) {
	m := attemptPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// Digit run too large for int.
		return 0, false
	}
	return n, true
}

// attemptOf is ParseAttemptNumber applied to the last element of a path.
func attemptOf(path string) (int, bool) {
	return ParseAttemptNumber(filepath.Base(path))
}
