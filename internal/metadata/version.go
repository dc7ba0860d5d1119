package metadata

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrBadVersion is returned when the version string is not a dotted
// numeric MAJOR.MINOR[.PATCH[.BUILD]] sequence.
var ErrBadVersion = errors.New("version is not a dotted numeric sequence")

// versionPattern accepts two to four dot-separated numeric components.
var versionPattern = regexp.MustCompile(`^\d+(\.\d+){1,3}$`)

// ParseVersion parses a version string into a four-part numeric tuple,
// padding missing components with zeros.
func ParseVersion(version string) ([4]int, error) {
	var tuple [4]int

	if !versionPattern.MatchString(version) {
		return tuple, fmt.Errorf("%w: %q", ErrBadVersion, version)
	}

	for i, part := range strings.Split(version, ".") {
		value, err := strconv.Atoi(part)
		if err != nil {
			return tuple, fmt.Errorf("%w: %q", ErrBadVersion, version)
		}

		tuple[i] = value
	}

	return tuple, nil
}
