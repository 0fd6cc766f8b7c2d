package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "colorwell"

// PlatformProvider abstracts the host lookups used to locate per-user
// directories, so tests can describe any OS
type PlatformProvider interface {
	GetOS() string
	GetEnv(key string) string
	UserHomeDir() (string, error)
}

// OSPlatformProvider implements PlatformProvider using real OS calls
type OSPlatformProvider struct{}

func (OSPlatformProvider) GetOS() string                { return runtime.GOOS }
func (OSPlatformProvider) GetEnv(key string) string     { return os.Getenv(key) }
func (OSPlatformProvider) UserHomeDir() (string, error) { return os.UserHomeDir() }

// DefaultPlatform is used by ConfigDir, UserCacheDir and Resolve. Tests may
// replace it.
var DefaultPlatform PlatformProvider = OSPlatformProvider{}

// dirRule locates a per-user directory on one OS. A set env variable wins;
// otherwise the directory is home joined with underHome. A rule without
// underHome has no fallback.
type dirRule struct {
	env       string
	underHome []string
}

// The "" key applies to every OS without its own rule.
var (
	configRules = map[string]dirRule{
		"windows": {env: "APPDATA"},
		"darwin":  {underHome: []string{"Library", "Application Support"}},
		"":        {env: "XDG_CONFIG_HOME", underHome: []string{".config"}},
	}
	cacheRules = map[string]dirRule{
		"windows": {env: "LOCALAPPDATA", underHome: []string{"AppData", "Local"}},
		"darwin":  {underHome: []string{"Library", "Caches"}},
		"":        {env: "XDG_CACHE_HOME", underHome: []string{".cache"}},
	}
)

// appDir applies the rule for the platform's OS and appends the application
// name. It returns "" when the directory cannot be determined.
func appDir(rules map[string]dirRule, platform PlatformProvider) string {
	rule, ok := rules[platform.GetOS()]
	if !ok {
		rule = rules[""]
	}
	if rule.env != "" {
		if dir := platform.GetEnv(rule.env); dir != "" {
			return filepath.Join(dir, appName)
		}
	}
	if rule.underHome == nil {
		return ""
	}
	home, err := platform.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	parts := append([]string{home}, rule.underHome...)
	return filepath.Join(append(parts, appName)...)
}

// ConfigDir returns the global configuration directory searched after the
// project directory, or "" if there is none
func ConfigDir() string {
	return ConfigDirWithPlatform(DefaultPlatform)
}

// ConfigDirWithPlatform allows injecting a custom platform provider for testing
func ConfigDirWithPlatform(platform PlatformProvider) string {
	return appDir(configRules, platform)
}

// UserCacheDir returns the directory holding the log file, or "" if there is
// none
func UserCacheDir() string {
	return UserCacheDirWithPlatform(DefaultPlatform)
}

// UserCacheDirWithPlatform allows injecting a custom platform provider for testing
func UserCacheDirWithPlatform(platform PlatformProvider) string {
	return appDir(cacheRules, platform)
}

// LogPath returns the default log file path, creating its directory. Without
// a cache directory the log goes to the system temp directory.
func LogPath() string {
	dir := UserCacheDir()
	if dir == "" || os.MkdirAll(dir, 0755) != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appName+".log")
}
