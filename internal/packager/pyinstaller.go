package packager

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/oshokin/app-bundler/internal/config"
	"github.com/oshokin/app-bundler/internal/logger"
	"github.com/oshokin/app-bundler/internal/platform"
)

// Packager produces a platform-native bundle from the resolved options
// and returns the path of the produced artifact.
type Packager interface {
	Package(ctx context.Context, cfg *config.Config) (string, error)
}

// PyInstaller packages the application by invoking the pyinstaller tool.
type PyInstaller struct {
	// Executable is the pyinstaller binary, defaulting to "pyinstaller" on PATH.
	Executable string
}

// Package runs pyinstaller with the assembled argument list and returns
// the bundle path inside the dist directory.
func (p *PyInstaller) Package(ctx context.Context, cfg *config.Config) (string, error) {
	executable := p.Executable
	if executable == "" {
		executable = "pyinstaller"
	}

	args := Args(cfg)
	logger.InfoKV(ctx, "Invoking packager", "executable", executable, "args", args)

	command := exec.CommandContext(ctx, executable, args...)
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("pyinstaller: %w", err)
	}

	return cfg.BundlePath(), nil
}

// Args assembles the pyinstaller argument list for the resolved options.
func Args(cfg *config.Config) []string {
	args := []string{
		"--name", cfg.AppName,
		"--noconfirm",
		"--clean",
		"--workpath", cfg.BuildDir,
		"--distpath", cfg.DistDir,
	}

	// Windowed mode applies only where a GUI subsystem exists.
	windowed := cfg.Platform == platform.Windows || cfg.Platform == platform.MacOS
	if windowed && !cfg.Console {
		args = append(args, "--windowed")
	}

	if cfg.IconFile != "" {
		args = append(args, "--icon", cfg.IconFile)
	}

	if cfg.Platform == platform.Windows && cfg.UACAdmin {
		args = append(args, "--uac-admin")
	}

	if cfg.Platform == platform.MacOS && cfg.BundleIdentifier != "" {
		args = append(args, "--osx-bundle-identifier", cfg.BundleIdentifier)
	}

	for _, module := range cfg.HiddenImports {
		args = append(args, "--hidden-import", module)
	}

	for _, module := range cfg.ExcludeModules {
		args = append(args, "--exclude-module", module)
	}

	for _, mapping := range cfg.AdditionalData {
		args = append(args, "--add-data", mapping.Source+string(os.PathListSeparator)+mapping.Target)
	}

	return append(args, cfg.MainScript)
}
