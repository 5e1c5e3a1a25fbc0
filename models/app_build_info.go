// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo is the build metadata linked into a binary with -ldflags.
// The zero value reports nothing; callers substitute "N/A" where needed.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }
func (a AppBuildInfo) BuildDate() string    { return a.buildDate }
func (a AppBuildInfo) BuildCommit() string  { return a.buildCommit }

// VersionResponse describes this build, reporting version as the release
// version. An empty version falls back to the linked build version.
func (a AppBuildInfo) VersionResponse(version string) VersionResponse {
	if version == "" {
		version = a.buildVersion
	}

	return VersionResponse{
		Version:     version,
		BuildDate:   a.buildDate,
		BuildCommit: a.buildCommit,
	}
}
