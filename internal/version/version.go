// Package version exposes the application version.
package version

import (
	"runtime/debug"
	"strings"
)

// version value will be set during compilation (`-ldflags "-X .../internal/version.version=v1.2.3"`).
var version = ""

// Version returns version value (without `v` prefix). When the value was not injected at compile time, the
// module version from the build info is used. An empty string means that the version is unknown.
func Version() string {
	if v := strings.TrimLeft(version, "vV "); v != "" {
		return v
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return strings.TrimLeft(info.Main.Version, "vV ")
	}

	return ""
}
