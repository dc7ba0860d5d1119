package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/app-bundler/internal/platform"
)

// Config is the effective option set for one target platform.
//
// It is produced once per run by Document.Resolve and is read-only
// afterwards; stages receive it by value semantics via Clone.
type Config struct {
	// Platform is the target the configuration was resolved for.
	Platform platform.Platform
	// AppName is the name of the produced application.
	AppName string
	// Version is the application version string.
	Version string
	// MainScript is the absolute path of the packager entry-point script.
	MainScript string
	// BuildDir is the absolute working directory for intermediate output.
	BuildDir string
	// DistDir is the absolute directory receiving the final bundle.
	DistDir string
	// AdditionalData lists extra files bundled into the artifact.
	AdditionalData []DataMapping
	// HiddenImports lists modules the packager cannot discover itself.
	HiddenImports []string
	// ExcludeModules lists modules excluded from the bundle.
	ExcludeModules []string
	// Company optionally describes the publisher for the version resource.
	Company *Company

	// IconFile is the platform icon, empty when not configured.
	IconFile string
	// Console keeps the application attached to a console or terminal.
	Console bool

	// AdminAccess requests an elevated manifest (Windows only).
	AdminAccess bool
	// UACAdmin requests a UAC elevation prompt (Windows only).
	UACAdmin bool
	// VersionFile is the path of the generated version resource (Windows only).
	VersionFile string

	// BundleIdentifier is the CFBundleIdentifier (macOS only).
	BundleIdentifier string
	// EntitlementsFile is the signing entitlements plist (macOS only).
	EntitlementsFile string
	// InfoPlist is the path of the generated Info.plist (macOS only).
	InfoPlist string

	// DesktopFile is the path of the generated desktop entry (Linux only).
	DesktopFile string
	// Categories is the desktop-entry category list (Linux only).
	Categories string
}

// Resolve merges the base section with the section matching the target
// platform into one effective Config.
//
// It fails with ErrMissingField when app_name, version or main_script is
// absent, with ErrBadPath when main_script does not exist on disk, and
// with ErrUnknownPlatform when the document carries no section for the
// target.
func (d *Document) Resolve(target platform.Platform) (*Config, error) {
	if err := d.validateBase(); err != nil {
		return nil, err
	}

	buildDir, distDir := d.OutputDirs()

	cfg := &Config{
		Platform:       target,
		AppName:        d.Base.AppName,
		Version:        d.Base.Version,
		MainScript:     d.resolvePath(d.Base.MainScript),
		BuildDir:       buildDir,
		DistDir:        distDir,
		AdditionalData: append([]DataMapping(nil), d.Base.AdditionalData...),
		HiddenImports:  append([]string(nil), d.Base.HiddenImports...),
		ExcludeModules: append([]string(nil), d.Base.ExcludeModules...),
		Company:        d.Base.Company.Clone(),
	}

	if _, err := os.Stat(cfg.MainScript); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: main_script %s", ErrBadPath, cfg.MainScript)
	} else if err != nil {
		return nil, fmt.Errorf("stat main_script: %w", err)
	}

	if err := d.overlay(cfg, target); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateBase checks the required base fields.
func (d *Document) validateBase() error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"app_name", d.Base.AppName},
		{"version", d.Base.Version},
		{"main_script", d.Base.MainScript},
	} {
		if field.value == "" {
			return fmt.Errorf("%w: base.%s", ErrMissingField, field.name)
		}
	}

	return nil
}

// overlay applies the fields of the one section matching the target.
// Sections of other platforms are ignored entirely, so no field of a
// non-matching platform ever leaks into the result.
func (d *Document) overlay(cfg *Config, target platform.Platform) error {
	switch target {
	case platform.Windows:
		if d.Windows == nil {
			return fmt.Errorf("%w: %s", ErrUnknownPlatform, target)
		}

		cfg.IconFile = d.resolvePath(d.Windows.IconFile)
		cfg.Console = d.Windows.Console
		cfg.AdminAccess = d.Windows.AdminAccess
		cfg.UACAdmin = d.Windows.UACAdmin
		cfg.VersionFile = d.resolvePath(d.Windows.VersionFile)
	case platform.MacOS:
		if d.MacOS == nil {
			return fmt.Errorf("%w: %s", ErrUnknownPlatform, target)
		}

		cfg.IconFile = d.resolvePath(d.MacOS.IconFile)
		cfg.Console = d.MacOS.Console
		cfg.BundleIdentifier = d.MacOS.BundleIdentifier
		cfg.EntitlementsFile = d.resolvePath(d.MacOS.EntitlementsFile)
		cfg.InfoPlist = d.resolvePath(d.MacOS.InfoPlist)
	case platform.Linux:
		if d.Linux == nil {
			return fmt.Errorf("%w: %s", ErrUnknownPlatform, target)
		}

		cfg.IconFile = d.resolvePath(d.Linux.IconFile)
		cfg.Console = d.Linux.Console
		cfg.DesktopFile = d.resolvePath(d.Linux.DesktopFile)
		cfg.Categories = d.Linux.Categories
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPlatform, target)
	}

	return nil
}

// Clone returns a copy of the configuration to avoid leaking internal
// references to stage collaborators.
func (c *Config) Clone() *Config {
	cloned := *c
	cloned.AdditionalData = append([]DataMapping(nil), c.AdditionalData...)
	cloned.HiddenImports = append([]string(nil), c.HiddenImports...)
	cloned.ExcludeModules = append([]string(nil), c.ExcludeModules...)
	cloned.Company = c.Company.Clone()

	return &cloned
}

// BundlePath returns the location of the packaged artifact for the
// resolved platform: dist_dir/app_name plus the platform bundle extension.
func (c *Config) BundlePath() string {
	return filepath.Join(c.DistDir, c.AppName+c.Platform.BundleExtension())
}
