package sitecfg

import "runtime/debug"

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the application version, set via ldflags.
	Version = "dev"
	// Commit is the VCS revision, set via ldflags.
	Commit = "unknown"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version    string `json:"version"`
	Commit     string `json:"commit"`
	CompiledAt string `json:"compiledAt"`
	GoVersion  string `json:"goVersion"`
}

// ReadBuildInfo returns the ldflags values, falling back to the module and VCS
// data embedded by the Go toolchain when they were not set.
func ReadBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:    Version,
		Commit:     Commit,
		CompiledAt: CompiledAt,
		GoVersion:  "unknown",
	}

	embedded, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	info.GoVersion = embedded.GoVersion

	if info.Version == "dev" && embedded.Main.Version != "" && embedded.Main.Version != "(devel)" {
		info.Version = embedded.Main.Version
	}

	for _, setting := range embedded.Settings {
		switch {
		case setting.Key == "vcs.revision" && info.Commit == "unknown":
			info.Commit = setting.Value
		case setting.Key == "vcs.time" && info.CompiledAt == "unknown":
			info.CompiledAt = setting.Value
		}
	}

	return info
}
