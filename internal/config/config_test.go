package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/app-bundler/internal/platform"
)

// writeConfig drops a configuration file plus an empty main script into a
// temporary directory and loads the resulting document.
func writeConfig(t *testing.T, contents string) *Document {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFilename)

	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"), nil, 0o600))

	doc, err := Load(path)
	require.NoError(t, err)

	return doc
}

// TestResolveMergesBaseAndPlatform checks that resolution keeps every base
// field and overlays only the matching platform section.
func TestResolveMergesBaseAndPlatform(t *testing.T) {
	t.Parallel()

	doc := writeConfig(t, `
base:
  app_name: Demo
  version: 1.2.3
  main_script: main.py
  hidden_imports: [requests]
  exclude_modules: [tkinter]
  additional_data:
    - source: assets
      target: assets
windows:
  icon_file: icons/app.ico
  uac_admin: true
  console: true
macos:
  bundle_identifier: com.example.demo
linux:
  categories: Utility;
`)

	cfg, err := doc.Resolve(platform.Windows)
	require.NoError(t, err)

	require.Equal(t, "Demo", cfg.AppName)
	require.Equal(t, "1.2.3", cfg.Version)
	require.Equal(t, []string{"requests"}, cfg.HiddenImports)
	require.Equal(t, []string{"tkinter"}, cfg.ExcludeModules)
	require.Len(t, cfg.AdditionalData, 1)
	require.True(t, cfg.UACAdmin)
	require.True(t, cfg.Console)

	// No cross-platform leakage.
	require.Empty(t, cfg.BundleIdentifier)
	require.Empty(t, cfg.Categories)
	require.Empty(t, cfg.DesktopFile)
}

// TestResolveMissingField rejects configurations without required base fields.
func TestResolveMissingField(t *testing.T) {
	t.Parallel()

	doc := writeConfig(t, `
base:
  app_name: Demo
  version: 1.2.3
linux:
  categories: Utility
`)

	_, err := doc.Resolve(platform.Linux)
	require.ErrorIs(t, err, ErrMissingField)
	require.Contains(t, err.Error(), "main_script")
}

// TestResolveBadMainScript rejects an entry-point script absent from disk.
func TestResolveBadMainScript(t *testing.T) {
	t.Parallel()

	doc := writeConfig(t, `
base:
  app_name: Demo
  version: 1.2.3
  main_script: nowhere.py
linux: {}
`)

	_, err := doc.Resolve(platform.Linux)
	require.ErrorIs(t, err, ErrBadPath)
}

// TestResolveMissingSection rejects a target the document has no section for.
func TestResolveMissingSection(t *testing.T) {
	t.Parallel()

	doc := writeConfig(t, `
base:
  app_name: Demo
  version: 1.2.3
  main_script: main.py
linux: {}
`)

	_, err := doc.Resolve(platform.MacOS)
	require.ErrorIs(t, err, ErrUnknownPlatform)
}

// TestParseRejectsUnknownKeys enforces strict decoding at the top level and
// inside sections.
func TestParseRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("unexpected: {}\n"))
	require.ErrorIs(t, err, ErrUnknownField)

	_, err = Parse([]byte("base:\n  app_name: Demo\n  colour: red\n"))
	require.ErrorIs(t, err, ErrUnknownField)
}

// TestRelativePathsAnchorAtConfigDir ensures path resolution is independent
// of the process working directory.
func TestRelativePathsAnchorAtConfigDir(t *testing.T) {
	t.Parallel()

	doc := writeConfig(t, `
base:
  app_name: Demo
  version: 1.2.3
  main_script: main.py
windows:
  icon_file: icons/app.ico
`)

	cfg, err := doc.Resolve(platform.Windows)
	require.NoError(t, err)

	require.True(t, filepath.IsAbs(cfg.MainScript))
	require.Equal(t, filepath.Join(doc.Dir(), "main.py"), cfg.MainScript)
	require.Equal(t, filepath.Join(doc.Dir(), "icons", "app.ico"), cfg.IconFile)
	require.Equal(t, filepath.Join(doc.Dir(), DefaultBuildDir), cfg.BuildDir)
	require.Equal(t, filepath.Join(doc.Dir(), DefaultDistDir), cfg.DistDir)
}

// TestOutputDirsDefaults checks defaulting before resolution, which the
// cleaning stage relies on.
func TestOutputDirsDefaults(t *testing.T) {
	t.Parallel()

	doc := writeConfig(t, `
base:
  app_name: Demo
  build_dir: out/build
`)

	buildDir, distDir := doc.OutputDirs()
	require.Equal(t, filepath.Join(doc.Dir(), "out", "build"), buildDir)
	require.Equal(t, filepath.Join(doc.Dir(), DefaultDistDir), distDir)
}

// TestConfigClone verifies Clone detaches slices and the company block.
func TestConfigClone(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Platform:      platform.Linux,
		AppName:       "Demo",
		HiddenImports: []string{"requests"},
		Company:       &Company{Name: "Example Ltd"},
	}

	cloned := cfg.Clone()
	require.Equal(t, cfg, cloned)
	require.NotSame(t, cfg, cloned)
	require.NotSame(t, cfg.Company, cloned.Company)

	cloned.HiddenImports[0] = "urllib3"
	require.Equal(t, "requests", cfg.HiddenImports[0])
}

// TestBundlePath checks the artifact location per platform.
func TestBundlePath(t *testing.T) {
	t.Parallel()

	cfg := &Config{Platform: platform.MacOS, AppName: "Demo", DistDir: "/tmp/dist"}
	require.Equal(t, filepath.Join("/tmp/dist", "Demo.app"), cfg.BundlePath())

	cfg.Platform = platform.Windows
	require.Equal(t, filepath.Join("/tmp/dist", "Demo.exe"), cfg.BundlePath())

	cfg.Platform = platform.Linux
	require.Equal(t, filepath.Join("/tmp/dist", "Demo"), cfg.BundlePath())
}
