// This file is part of socfabric.
//
// socfabric is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// socfabric is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with socfabric.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the socfabric build. The version
// number is set by the linker when building a release:
//
//	go build -ldflags "-X github.com/jetsetilly/socfabric/version.number=v0.1.0"
//
// Otherwise the version is taken from the VCS information embedded in the
// binary by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "socfabric"

// set by the linker for release builds
var number string

var version string
var revision string

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// A version of "unreleased" means the binary was built from a VCS checkout
// without a version number. A version of "local" means there is neither a
// version number nor VCS information, as with "go run .".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a one line summary of the version suitable for a banner.
func String() string {
	if number != "" {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

func readBuildInfo() (vcs bool, rev string, dirty bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return false, "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	return vcs, rev, dirty
}

func init() {
	vcs, rev, dirty := readBuildInfo()

	switch {
	case rev == "":
		revision = "no revision information"
	case dirty:
		revision = rev + "+dirty"
	default:
		revision = rev
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
