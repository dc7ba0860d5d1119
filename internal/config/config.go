package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFilename is the default filename for the build configuration.
	DefaultConfigFilename = "app-bundler.yaml"

	// DefaultBuildDir is used when the base section omits build_dir.
	DefaultBuildDir = "build"

	// DefaultDistDir is used when the base section omits dist_dir.
	DefaultDistDir = "dist"
)

var (
	// ErrMissingField is returned when a required base field is absent.
	ErrMissingField = errors.New("required field is missing")
	// ErrUnknownField is returned when the file contains a key no section defines.
	ErrUnknownField = errors.New("unknown configuration field")
	// ErrBadPath is returned when a configured path does not exist on disk.
	ErrBadPath = errors.New("path does not exist")
	// ErrUnknownPlatform is returned when the target platform matches no section.
	ErrUnknownPlatform = errors.New("no section for target platform")
)

// DataMapping is a source-to-target path pair bundled into the artifact.
type DataMapping struct {
	// Source is the path of the file or directory to include.
	Source string `yaml:"source"`
	// Target is the path inside the bundle the source is copied to.
	Target string `yaml:"target"`
}

// Company holds publisher strings embedded into the Windows version resource.
type Company struct {
	// Name is the publisher's company name.
	Name string `yaml:"name"`
	// Copyright is the legal copyright line.
	Copyright string `yaml:"copyright"`
	// Description is the file description shown in file properties.
	Description string `yaml:"description"`
	// ProductName is the product name shown in file properties.
	ProductName string `yaml:"product_name"`
	// Trademark is the legal trademark line.
	Trademark string `yaml:"trademark"`
}

// Clone returns a deep copy of the company block.
func (c *Company) Clone() *Company {
	if c == nil {
		return nil
	}

	cloned := *c

	return &cloned
}

// Base holds the fields shared by every target platform.
type Base struct {
	// AppName is the name of the produced application.
	AppName string `yaml:"app_name"`
	// Version is the application version string.
	Version string `yaml:"version"`
	// MainScript is the entry-point script handed to the packager.
	MainScript string `yaml:"main_script"`
	// BuildDir is the working directory for intermediate build output.
	BuildDir string `yaml:"build_dir"`
	// DistDir is the directory receiving the final bundle.
	DistDir string `yaml:"dist_dir"`
	// AdditionalData lists extra files bundled into the artifact.
	AdditionalData []DataMapping `yaml:"additional_data"`
	// HiddenImports lists modules the packager cannot discover itself.
	HiddenImports []string `yaml:"hidden_imports"`
	// ExcludeModules lists modules excluded from the bundle.
	ExcludeModules []string `yaml:"exclude_modules"`
	// Company optionally describes the publisher for the version resource.
	Company *Company `yaml:"company"`
}

// WindowsSection holds the fields applied when targeting Windows.
type WindowsSection struct {
	// IconFile is the .ico file embedded into the executable.
	IconFile string `yaml:"icon_file"`
	// Console keeps the console window attached to the executable.
	Console bool `yaml:"console"`
	// AdminAccess requests an elevated manifest for the executable.
	AdminAccess bool `yaml:"admin_access"`
	// UACAdmin requests a UAC elevation prompt at startup.
	UACAdmin bool `yaml:"uac_admin"`
	// VersionFile overrides the path of the generated version resource.
	VersionFile string `yaml:"version_file"`
}

// MacOSSection holds the fields applied when targeting macOS.
type MacOSSection struct {
	// IconFile is the .icns file embedded into the bundle.
	IconFile string `yaml:"icon_file"`
	// Console keeps the produced binary attached to a terminal.
	Console bool `yaml:"console"`
	// BundleIdentifier is the CFBundleIdentifier of the bundle.
	BundleIdentifier string `yaml:"bundle_identifier"`
	// EntitlementsFile is the entitlements plist used during signing.
	EntitlementsFile string `yaml:"entitlements_file"`
	// InfoPlist overrides the path of the generated Info.plist.
	InfoPlist string `yaml:"info_plist"`
}

// LinuxSection holds the fields applied when targeting Linux.
type LinuxSection struct {
	// IconFile is the .png icon referenced by the desktop entry.
	IconFile string `yaml:"icon_file"`
	// Console marks the desktop entry as a terminal application.
	Console bool `yaml:"console"`
	// DesktopFile overrides the path of the generated .desktop entry.
	DesktopFile string `yaml:"desktop_file"`
	// Categories is the desktop-entry category list.
	Categories string `yaml:"categories"`
}

// Document is the raw configuration file before resolution.
type Document struct {
	// Base holds the platform-independent fields.
	Base Base `yaml:"base"`
	// Windows holds the Windows overlay, if present.
	Windows *WindowsSection `yaml:"windows"`
	// MacOS holds the macOS overlay, if present.
	MacOS *MacOSSection `yaml:"macos"`
	// Linux holds the Linux overlay, if present.
	Linux *LinuxSection `yaml:"linux"`

	// dir is the directory of the configuration file; relative paths in the
	// document are resolved against it.
	dir string
}

// Load reads and strictly decodes the configuration file at path.
// Keys that match no known field are rejected with ErrUnknownField.
func Load(path string) (*Document, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}

	doc, err := Parse(contents)
	if err != nil {
		return nil, err
	}

	absolute, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("locate configuration: %w", err)
	}

	doc.dir = filepath.Dir(absolute)

	return doc, nil
}

// Parse strictly decodes configuration file contents. Relative paths in the
// returned document resolve against the process working directory until
// the document directory is set by Load.
func Parse(contents []byte) (*Document, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(contents))
	decoder.KnownFields(true)

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		var typeError *yaml.TypeError
		if errors.As(err, &typeError) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, typeError.Error())
		}

		return nil, fmt.Errorf("decode configuration: %w", err)
	}

	return &doc, nil
}

// Dir returns the directory relative paths resolve against.
func (d *Document) Dir() string {
	return d.dir
}

// OutputDirs returns the build and dist directories with defaults applied,
// resolved against the configuration directory. It is usable before full
// resolution so the cleaning stage does not depend on a valid document.
func (d *Document) OutputDirs() (buildDir, distDir string) {
	buildDir = d.Base.BuildDir
	if buildDir == "" {
		buildDir = DefaultBuildDir
	}

	distDir = d.Base.DistDir
	if distDir == "" {
		distDir = DefaultDistDir
	}

	return d.resolvePath(buildDir), d.resolvePath(distDir)
}

// resolvePath anchors a relative path at the configuration directory.
func (d *Document) resolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(d.dir, path)
}
