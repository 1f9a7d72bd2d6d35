// Package version derives the running build's identity.
//
// Resolution order: an -ldflags override, then vcs.revision from
// debug.BuildInfo, then "dev" (test binaries, non-git checkouts).
package version

import "runtime/debug"

// AppName appears in version strings and protocol handshakes.
const AppName = "quarry"

// gitCommitOverride is injected with -ldflags for container builds where
// .git is not present in the build context.
var gitCommitOverride string

// GitCommit is the short (8 char) commit hash, or "dev".
var GitCommit = resolveCommit()

func resolveCommit() string {
	if gitCommitOverride != "" {
		return shorten(gitCommitOverride)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return shorten(s.Value)
		}
	}
	return "dev"
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "quarry/<commit>", suitable for user-agent strings and logs.
func Full() string {
	return AppName + "/" + GitCommit
}
