package config

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// GetVersion returns the version from the APP_VERSION environment
// variable (set by CI), falling back to the VERSION file plus the git
// commit count for local development builds.
func GetVersion() string {
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}

	baseVersion := getBaseVersion()
	if count := getGitCommitCount(); count > 0 {
		return baseVersion + "." + strconv.Itoa(count)
	}
	return baseVersion
}

// getBaseVersion reads the base version from the VERSION file at the
// repository root
func getBaseVersion() string {
	if content, err := os.ReadFile("VERSION"); err == nil {
		return strings.TrimSpace(string(content))
	}
	return "0.1.0"
}

// getGitCommitCount gets the total commit count from git
func getGitCommitCount() int {
	cmd := exec.Command("git", "rev-list", "--count", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		return 0
	}
	count, err := strconv.Atoi(strings.TrimSpace(string(output)))
	if err != nil {
		return 0
	}
	return count
}
