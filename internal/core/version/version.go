// Package version reports what build of the service is running
package version

import "runtime/debug"

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service   string `json:"service"    example:"meteopage-web"`
	Version   string `json:"version"    example:"v0.3.0"`
	Commit    string `json:"commit"     example:"4f2c1ab"`
	Date      string `json:"date"       example:"2025-09-02"`
	GoVersion string `json:"go_version" example:"go1.25.0"`
}

// set with -ldflags "-X meteopage/internal/core/version.version=v0.3.0 -X ...commit=... -X ...date=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// readBuild is swapped in tests
var readBuild = debug.ReadBuildInfo

// Info returns the build information, falling back to the vcs stamp the go tool embeds
func Info() BuildInfo {
	bi := BuildInfo{
		Service: "meteopage-web",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	info, ok := readBuild()
	if !ok || info == nil {
		return bi
	}
	bi.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if bi.Commit == "none" && len(s.Value) >= 7 {
				bi.Commit = s.Value[:7]
			}
		case "vcs.time":
			if bi.Date == "unknown" && len(s.Value) >= 10 {
				bi.Date = s.Value[:10]
			}
		}
	}
	return bi
}
