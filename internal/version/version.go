// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version information
// for the wyrand module and the tools provided in the same repository.
package version

import (
	"fmt"
	"regexp"
	"strconv"
)

// semverRE parses a semantic version string into its constituent parts.  The
// pre-release and build metadata groups only admit the semver alphabet.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

var (
	// Version is the module version per the semantic versioning 2.0.0 spec
	// (https://semver.org/).
	//
	// It may be overridden during the build process with:
	// '-ldflags "-X github.com/decred/wyrand/internal/version.Version=fullsemver"'
	//
	// It MUST be a full semantic version or the package will panic at
	// runtime.
	Version = "1.0.0-pre"

	// The following are set via init by parsing Version.
	Major         uint
	Minor         uint
	Patch         uint
	PreRelease    string
	BuildMetadata string
)

// semVer houses the parsed components of a semantic version string.
type semVer struct {
	major, minor, patch uint
	pre, build          string
}

// parseSemVer parses the components of the provided semantic version string.
func parseSemVer(s string) (semVer, error) {
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		return semVer{}, fmt.Errorf("malformed version string %q: does not "+
			"conform to semver specification", s)
	}

	var nums [3]uint
	for i, name := range []string{"major", "minor", "patch"} {
		val, err := strconv.ParseUint(m[i+1], 10, 0)
		if err != nil {
			return semVer{}, fmt.Errorf("malformed semver %s: %w", name, err)
		}
		nums[i] = uint(val)
	}

	return semVer{
		major: nums[0],
		minor: nums[1],
		patch: nums[2],
		pre:   m[4],
		build: m[5],
	}, nil
}

func init() {
	v, err := parseSemVer(Version)
	if err != nil {
		panic(err)
	}
	Major, Minor, Patch = v.major, v.minor, v.patch
	PreRelease, BuildMetadata = v.pre, v.build
}

// String returns the module version.  When the version carries no build
// metadata and the binary was built from a vcs checkout, the abbreviated
// commit id is appended as build metadata.
func String() string {
	if BuildMetadata != "" {
		return Version
	}
	if commit := vcsCommitID(); commit != "" {
		return Version + "+" + commit
	}
	return Version
}
