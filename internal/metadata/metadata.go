package metadata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/app-bundler/internal/config"
	"github.com/oshokin/app-bundler/internal/platform"
)

// ErrMissingBundleID is returned when no macOS bundle identifier is
// configured and none can be derived from the application name.
var ErrMissingBundleID = errors.New("bundle identifier cannot be derived")

// DefaultFileMode is used when writing descriptor files.
const DefaultFileMode os.FileMode = 0o644

// Inject renders the descriptor for the configuration's platform and writes
// it to the descriptor path, creating parent directories as needed. It
// returns the path of the written descriptor.
func Inject(cfg *config.Config) (string, error) {
	var (
		contents string
		err      error
	)

	switch cfg.Platform {
	case platform.Windows:
		contents, err = WindowsVersionInfo(cfg)
	case platform.MacOS:
		contents, err = InfoPlist(cfg)
	case platform.Linux:
		contents = DesktopEntry(cfg)
	default:
		return "", fmt.Errorf("no descriptor for platform %q", cfg.Platform)
	}

	if err != nil {
		return "", err
	}

	path := DescriptorPath(cfg)
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create descriptor directory: %w", err)
	}

	if err = os.WriteFile(path, []byte(contents), DefaultFileMode); err != nil {
		return "", fmt.Errorf("write descriptor: %w", err)
	}

	return path, nil
}

// DescriptorPath returns the target path of the platform descriptor,
// honoring per-platform overrides and defaulting into the build directory.
func DescriptorPath(cfg *config.Config) string {
	switch cfg.Platform {
	case platform.Windows:
		if cfg.VersionFile != "" {
			return cfg.VersionFile
		}

		return filepath.Join(cfg.BuildDir, "version_info.txt")
	case platform.MacOS:
		if cfg.InfoPlist != "" {
			return cfg.InfoPlist
		}

		return filepath.Join(cfg.BuildDir, "Info.plist")
	default:
		if cfg.DesktopFile != "" {
			return cfg.DesktopFile
		}

		return filepath.Join(cfg.BuildDir, cfg.AppName+".desktop")
	}
}
