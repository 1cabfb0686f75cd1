package gles

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a GL major.minor pair. ES reports whether the string came from an
// OpenGL ES context.
type Version struct {
	Major, Minor int
	ES           bool
}

var (
	ES20    = Version{Major: 2, Minor: 0, ES: true}
	Core41  = Version{Major: 4, Minor: 1}
	esLabel = "OpenGL ES"
)

func (v Version) String() string {
	if v.ES {
		return fmt.Sprintf("%s %d.%d", esLabel, v.Major, v.Minor)
	}
	return fmt.Sprintf("OpenGL %d.%d", v.Major, v.Minor)
}

// AtLeast compares major.minor only.
func (v Version) AtLeast(min Version) bool {
	if v.Major != min.Major {
		return v.Major > min.Major
	}
	return v.Minor >= min.Minor
}

// ParseVersion reads a GL_VERSION string, e.g. "4.1 Metal - 76.3" or
// "OpenGL ES 3.2 V@415.0".
func ParseVersion(s string) (Version, error) {
	var v Version
	rest := strings.TrimSpace(s)
	if after, ok := strings.CutPrefix(rest, esLabel); ok {
		v.ES = true
		rest = strings.TrimPrefix(strings.TrimSpace(after), "-CM")
		rest = strings.TrimSpace(rest)
	}
	field, _, _ := strings.Cut(rest, " ")
	majorStr, minorStr, ok := strings.Cut(field, ".")
	if !ok {
		return Version{}, fmt.Errorf("gles: malformed version %q", s)
	}
	// Vendors sometimes append a release number: "4.6.0".
	minorStr, _, _ = strings.Cut(minorStr, ".")

	var err error
	if v.Major, err = strconv.Atoi(majorStr); err != nil {
		return Version{}, fmt.Errorf("gles: malformed version %q: %w", s, err)
	}
	if v.Minor, err = strconv.Atoi(minorStr); err != nil {
		return Version{}, fmt.Errorf("gles: malformed version %q: %w", s, err)
	}
	return v, nil
}

// CheckVersion fails with *UnsupportedPlatformError when ctx is older than min.
// It issues no calls other than Version.
func CheckVersion(ctx Context, min Version) (Version, error) {
	reported := ctx.Version()
	have, err := ParseVersion(reported)
	if err != nil {
		return Version{}, &UnsupportedPlatformError{Want: min, Reported: reported}
	}
	if !have.AtLeast(min) {
		return have, &UnsupportedPlatformError{Have: have, Want: min, Reported: reported}
	}
	return have, nil
}
