// Package version exposes the build's version information.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at build time with -ldflags "-X .../internal/version.Version=v1.2.3".
var Version = "dev"

// Info describes the running build.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit,omitempty"`
	GoVersion string `json:"goVersion"`
	Dirty     bool   `json:"dirty,omitempty"`
}

// Get assembles version information from the ldflags value and the
// module build metadata stamped by the Go toolchain.
func Get() Info {
	info := Info{Version: Version}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.GitCommit = s.Value
				if len(info.GitCommit) > 7 {
					info.GitCommit = info.GitCommit[:7]
				}
			case "vcs.modified":
				info.Dirty = s.Value == "true"
			}
		}
	}
	return info
}

// Short returns the compact form used in logs and the health endpoint,
// e.g. "dev-3f1c2ab" or "v1.2.3-3f1c2ab-dirty".
func Short() string {
	info := Get()
	out := info.Version
	if info.GitCommit != "" {
		out = fmt.Sprintf("%s-%s", out, info.GitCommit)
	}
	if info.Dirty {
		out += "-dirty"
	}
	return out
}
