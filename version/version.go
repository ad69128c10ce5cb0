// Package version exposes build information embedded at compile time.
//
// Version and commit are set via -ldflags:
//
//	go build -ldflags "-X github.com/ishwor/authcookbook/version.Version=1.0.0"
package version

import "runtime/debug"

// Set at build time via -ldflags. When unset, values fall back to module
// build info where available.
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info is the build information returned by the version endpoint.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit,omitempty"`
	BuildTime string `json:"buildTime,omitempty"`
	GoVersion string `json:"goVersion"`
}

// Get returns the build information for the running binary.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
		if info.GitCommit == "" {
			for _, setting := range buildInfo.Settings {
				if setting.Key == "vcs.revision" {
					commit := setting.Value
					if len(commit) > 7 {
						commit = commit[:7]
					}
					info.GitCommit = commit
				}
			}
		}
	}
	return info
}
