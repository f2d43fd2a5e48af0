package bloopcfg

import (
	"strings"

	"golang.org/x/mod/semver"

	"github.com/mikeschinkel/bloopcfg/bloop"
)

// VersionStatus classifies the format version a document declares.
type VersionStatus int

const (
	VersionSupported VersionStatus = iota
	VersionNewer
	VersionInvalid
)

// CheckVersion compares version with bloop.LatestVersion.
func CheckVersion(version string) VersionStatus {
	v := "v" + strings.TrimPrefix(version, "v")
	switch {
	case !semver.IsValid(v):
		return VersionInvalid
	case semver.Compare(v, "v"+bloop.LatestVersion) > 0:
		return VersionNewer
	}
	return VersionSupported
}

// checkVersion only logs; unknown versions are still decoded.
func checkVersion(version string) {
	switch CheckVersion(version) {
	case VersionInvalid:
		logger.Warn("Configuration version is not a semantic version", "version", version)
	case VersionNewer:
		logger.Warn("Configuration version is newer than supported",
			"version", version,
			"latest", bloop.LatestVersion,
		)
	}
}
