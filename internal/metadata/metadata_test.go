package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/app-bundler/internal/config"
	"github.com/oshokin/app-bundler/internal/platform"
)

// TestParseVersion checks zero-padding and rejection of malformed versions.
func TestParseVersion(t *testing.T) {
	t.Parallel()

	tuple, err := ParseVersion("1.2")
	require.NoError(t, err)
	require.Equal(t, [4]int{1, 2, 0, 0}, tuple)

	tuple, err = ParseVersion("1.2.3.4")
	require.NoError(t, err)
	require.Equal(t, [4]int{1, 2, 3, 4}, tuple)

	for _, bad := range []string{"", "1", "1.2.3.4.5", "1.x", "v1.2", "1.2-rc1"} {
		_, err = ParseVersion(bad)
		require.ErrorIs(t, err, ErrBadVersion, "version %q", bad)
	}
}

// TestWindowsVersionInfo renders the resource with padded tuple and company
// defaults.
func TestWindowsVersionInfo(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Platform: platform.Windows,
		AppName:  "Demo",
		Version:  "1.2",
	}

	contents, err := WindowsVersionInfo(cfg)
	require.NoError(t, err)
	require.Contains(t, contents, "filevers=(1, 2, 0, 0)")
	require.Contains(t, contents, "StringStruct(u'CompanyName', u'Unknown Company')")
	require.Contains(t, contents, "StringStruct(u'OriginalFilename', u'Demo.exe')")

	cfg.Company = &config.Company{Name: "Example Ltd", ProductName: "Demo Pro"}

	contents, err = WindowsVersionInfo(cfg)
	require.NoError(t, err)
	require.Contains(t, contents, "StringStruct(u'CompanyName', u'Example Ltd')")
	require.Contains(t, contents, "StringStruct(u'LegalCopyright', u'Copyright (c) Example Ltd')")
	require.Contains(t, contents, "StringStruct(u'ProductName', u'Demo Pro')")

	cfg.Version = "not-a-version"
	_, err = WindowsVersionInfo(cfg)
	require.ErrorIs(t, err, ErrBadVersion)
}

// TestInfoPlist covers explicit and derived bundle identifiers.
func TestInfoPlist(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Platform:         platform.MacOS,
		AppName:          "Demo App",
		Version:          "1.2.3",
		BundleIdentifier: "com.example.demo",
	}

	contents, err := InfoPlist(cfg)
	require.NoError(t, err)
	require.Contains(t, contents, "<string>com.example.demo</string>")
	require.Contains(t, contents, "<key>CFBundleVersion</key>")
	require.Contains(t, contents, "<string>1.2.3</string>")

	cfg.BundleIdentifier = ""

	identifier, err := BundleIdentifier(cfg)
	require.NoError(t, err)
	require.Equal(t, "com.demoapp.app", identifier)

	cfg.AppName = ""
	_, err = InfoPlist(cfg)
	require.ErrorIs(t, err, ErrMissingBundleID)
}

// TestDesktopEntry verifies rendering and the lenient categories separator.
func TestDesktopEntry(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Platform:   platform.Linux,
		AppName:    "Demo",
		Version:    "1.2.3",
		Categories: "Utility",
	}

	contents := DesktopEntry(cfg)
	require.Contains(t, contents, "Name=Demo\n")
	require.Contains(t, contents, "Categories=Utility;\n")
	require.Contains(t, contents, "Terminal=false\n")

	require.Equal(t, "Utility;", NormalizeCategories("Utility"))
	require.Equal(t, "Utility;", NormalizeCategories("Utility;"))
	require.Equal(t, "Utility;", NormalizeCategories(""))
	require.Equal(t, "Game;Education;", NormalizeCategories("Game;Education"))
}

// TestInjectWritesDescriptor checks the descriptor lands at the platform
// path and a render failure leaves nothing behind.
func TestInjectWritesDescriptor(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := &config.Config{
		Platform:   platform.Linux,
		AppName:    "Demo",
		Version:    "1.2.3",
		BuildDir:   filepath.Join(dir, "build"),
		Categories: "Utility",
	}

	path, err := Inject(cfg)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(cfg.BuildDir, "Demo.desktop"), path)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "Categories=Utility;")

	// Bad version: no descriptor file may appear.
	badCfg := &config.Config{
		Platform: platform.Windows,
		AppName:  "Demo",
		Version:  "oops",
		BuildDir: filepath.Join(dir, "win"),
	}

	_, err = Inject(badCfg)
	require.ErrorIs(t, err, ErrBadVersion)

	_, err = os.Stat(DescriptorPath(badCfg))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestDescriptorPathOverrides honors configured descriptor locations.
func TestDescriptorPathOverrides(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Platform:    platform.Windows,
		AppName:     "Demo",
		BuildDir:    "/b",
		VersionFile: "/custom/version.txt",
	}
	require.Equal(t, "/custom/version.txt", DescriptorPath(cfg))

	cfg.VersionFile = ""
	require.Equal(t, filepath.Join("/b", "version_info.txt"), DescriptorPath(cfg))

	plist := &config.Config{Platform: platform.MacOS, BuildDir: "/b", InfoPlist: "/custom/Info.plist"}
	require.Equal(t, "/custom/Info.plist", DescriptorPath(plist))

	desktop := &config.Config{Platform: platform.Linux, AppName: "Demo", BuildDir: "/b"}
	require.Equal(t, filepath.Join("/b", "Demo.desktop"), DescriptorPath(desktop))
}
