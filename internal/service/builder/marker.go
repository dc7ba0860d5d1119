package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mitchellh/go-ps"

	"github.com/oshokin/app-bundler/internal/logger"
)

// markerFilename marks an in-flight build next to the configuration file
// to keep two runs from racing over the same output directories.
const markerFilename = "app-bundler-build-marker.bin"

// markerFileMode restricts the marker to the owning user.
const markerFileMode os.FileMode = 0o600

// IsBuildRunningNow checks for a build marker in dir and attempts recovery
// when it looks stale (no other bundler process is alive).
func IsBuildRunningNow(ctx context.Context, dir string) bool {
	path := filepath.Join(dir, markerFilename)

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	} else if err != nil {
		logger.Infof(ctx, "Unable to read build marker: %v", err)

		return false
	}

	if anotherBundlerAlive(ctx) {
		return true
	}

	logger.Info(ctx, "Stale build marker found, removing it")

	if err = os.Remove(path); err != nil {
		return true
	}

	return false
}

// acquireMarker writes the marker file and returns a release function that
// removes it. The release function is safe to call on every exit path.
func acquireMarker(dir string) (func(), error) {
	path := filepath.Join(dir, markerFilename)

	contents := []byte(strconv.Itoa(os.Getpid()))
	if err := os.WriteFile(path, contents, markerFileMode); err != nil {
		return nil, fmt.Errorf("write build marker: %w", err)
	}

	return func() {
		_ = os.Remove(path)
	}, nil
}

// anotherBundlerAlive reports whether a process with this executable's
// name other than the current process is running.
func anotherBundlerAlive(ctx context.Context) bool {
	self, err := os.Executable()
	if err != nil {
		return false
	}

	processes, err := ps.Processes()
	if err != nil {
		logger.Infof(ctx, "Unable to list processes: %v", err)

		return false
	}

	name := filepath.Base(self)
	pid := os.Getpid()

	for _, process := range processes {
		if process.Pid() != pid && process.Executable() == name {
			return true
		}
	}

	return false
}
