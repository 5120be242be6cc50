package marketplace

import (
	"fmt"
	"strconv"
	"strings"
)

// VersionFormatError reports a catalog version that does not parse as
// three dot-separated integers.
type VersionFormatError struct {
	Version string
}

func (e *VersionFormatError) Error() string {
	return fmt.Sprintf("invalid catalog version %q: expected major.minor.patch", e.Version)
}

// Version is a three-part major.minor.patch catalog version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a major.minor.patch string. An empty string
// defaults to 1.0.0; anything else malformed is a VersionFormatError.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{Major: 1, Minor: 0, Patch: 0}, nil
	}

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, &VersionFormatError{Version: s}
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, &VersionFormatError{Version: s}
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// BumpPatch returns the version with patch incremented by exactly one,
// major and minor untouched.
func (v Version) BumpPatch() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
