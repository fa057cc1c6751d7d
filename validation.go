package subshare

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// memberNameMaxLen bounds display names; they end up in file content and
// spreadsheets, not in file names, but a bound keeps both readable.
const memberNameMaxLen = 50

// invalidNameChars are rejected in member names.
const invalidNameChars = `/\:*?"<>|`

// ValidateMemberName checks a display name before it enters a record,
// returning the trimmed name.
func ValidateMemberName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("member name cannot be empty")
	}
	if utf8.RuneCountInString(name) > memberNameMaxLen {
		return "", fmt.Errorf("member name must be %d characters or less", memberNameMaxLen)
	}
	if i := strings.IndexAny(name, invalidNameChars); i >= 0 {
		return "", fmt.Errorf("member name cannot contain %q", name[i:i+1])
	}
	return name, nil
}
