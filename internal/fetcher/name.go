package fetcher

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidName is returned for dependency names that are unsafe to use as
// a directory name or URL path segment.
var ErrInvalidName = errors.New("invalid dependency name")

const maxNameLen = 100

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateName rejects names containing path separators, shell
// metacharacters, or a leading dot or dash.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	case len(name) > maxNameLen:
		return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidName, name, maxNameLen)
	case !namePattern.MatchString(name):
		return fmt.Errorf("%w: %q may only contain letters, digits, '.', '_' and '-', and must start with a letter or digit", ErrInvalidName, name)
	case strings.Contains(name, ".."):
		return fmt.Errorf("%w: %q contains \"..\"", ErrInvalidName, name)
	case strings.HasSuffix(strings.ToLower(name), ".git"):
		return fmt.Errorf("%w: %q must not end in .git", ErrInvalidName, name)
	}
	return nil
}
