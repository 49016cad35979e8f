package cggtts

import "time"

// Version is a CGGTTS file format revision. Only revision 2E,
// the latest at the time of writing, is supported.
type Version int

// Supported file format revisions.
const (
	Version2E Version = iota + 1
)

func (v Version) String() string {
	return [...]string{"", "2E"}[v]
}

// ReleaseDate returns the date this revision was published by the BIPM.
func (v Version) ReleaseDate() time.Time {
	switch v {
	case Version2E:
		return time.Date(2014, 2, 20, 0, 0, 0, 0, time.UTC)
	}
	return time.Time{}
}

// ParseVersion parses a revision tag like "2E".
func ParseVersion(s string) (Version, error) {
	if s == "2E" {
		return Version2E, nil
	}
	return Version(0), ErrUnsupportedVersion
}
