package version

// Version is the current ghissues version.
const Version = "0.1.0"

// FullVersion returns the version with the v prefix.
func FullVersion() string {
	return "v" + Version
}

// UserAgent is the fixed client identifier sent to the GitHub API.
func UserAgent() string {
	return "ghissues/" + Version
}
