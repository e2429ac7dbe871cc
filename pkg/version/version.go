// Package version derives build metadata for logs and the health endpoint.
// An -ldflags override wins over VCS build info; "dev" is the fallback.
package version

import "runtime/debug"

// AppName appears in version strings and user agents.
const AppName = "maestro"

// commitOverride is injected via -ldflags for builds without a .git
// directory (container builds).
var commitOverride string

// GitCommit is the short commit hash, or "dev" when unknown.
var GitCommit = resolveCommit()

// BuildTime is the VCS commit timestamp when build info carries one.
var BuildTime = resolveSetting("vcs.time")

func resolveCommit() string {
	if commitOverride != "" {
		return shorten(commitOverride)
	}
	if rev := resolveSetting("vcs.revision"); rev != "" {
		return shorten(rev)
	}
	return "dev"
}

func resolveSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "maestro/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}
