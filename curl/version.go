package curl

import "fmt"

// Version identifies an engine release as a packed MAJOR.MINOR.PATCH number,
// the same encoding the engine's own version macro uses. Option and info
// identifiers that only exist above a given release carry a minimum Version
// in the classification tables.
type Version uint32

func MakeVersion(major, minor, patch int) Version {
	return Version(major)<<16 | Version(minor)<<8 | Version(patch)
}

func (v Version) Major() int { return int(v >> 16) }
func (v Version) Minor() int { return int(v >> 8 & 0xff) }
func (v Version) Patch() int { return int(v & 0xff) }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// AtLeast reports whether v is the given release or newer.
func (v Version) AtLeast(other Version) bool { return v >= other }

// Releases that gate identifiers used by the adapter.
var (
	Version7320 = MakeVersion(7, 32, 0) // transfer-progress callback
	Version7450 = MakeVersion(7, 45, 0) // active-socket info
	Version7590 = MakeVersion(7, 59, 0) // wide filetime info
	Version7610 = MakeVersion(7, 61, 0) // wide timing infos
	Version7640 = MakeVersion(7, 64, 0) // trailer callback
)
