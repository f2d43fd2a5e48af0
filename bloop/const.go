package bloop

import (
	"github.com/mikeschinkel/go-dt"
)

const (
	// AppName is the human-readable name of the library.
	AppName = "bloopcfg"

	// ConfigSlug names the per-workspace directory holding project
	// configuration documents, e.g. <workspace>/.bloop/
	ConfigSlug dt.PathSegment = "bloop"

	// ConfigFileExt is the extension every configuration document carries.
	ConfigFileExt = ".json"

	// LatestVersion is the newest configuration file format this library
	// writes and fully understands. Files declaring a newer version are still
	// decoded, but a warning is logged.
	LatestVersion = "1.4.0"

	// GitHubRepoURL provides the GitHub repo for this project for use in error messages
	GitHubRepoURL dt.URL = "https://github.com/mikeschinkel/bloopcfg"
)

const (
	ProjectConfigPath = "." + ConfigSlug
)
