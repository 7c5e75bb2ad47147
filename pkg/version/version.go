// Package version carries build metadata stamped in by the linker:
//
//	go build -ldflags "-X github.com/Sumatoshi-tech/leafgen/pkg/version.Version=v0.1.0"
package version

import "runtime/debug"

// Build metadata, overridden with -ldflags -X.
var (
	Version = "dev"     //nolint:gochecknoglobals // set by the linker
	Commit  = "none"    //nolint:gochecknoglobals // set by the linker
	Date    = "unknown" //nolint:gochecknoglobals // set by the linker
)

// InitBinaryVersion fills Version and Commit from the embedded module build
// info when the linker did not set them, as happens with go install.
func InitBinaryVersion() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if Commit == "none" {
				Commit = setting.Value
			}
		case "vcs.time":
			if Date == "unknown" {
				Date = setting.Value
			}
		}
	}
}
