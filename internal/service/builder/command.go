package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/oshokin/app-bundler/internal/config"
	"github.com/oshokin/app-bundler/internal/logger"
	"github.com/oshokin/app-bundler/internal/packager"
	"github.com/oshokin/app-bundler/internal/platform"
	"github.com/oshokin/app-bundler/internal/signing"
)

// Options contains inputs for the build entry point.
type Options struct {
	// ConfigPath is an optional path to the build configuration
	// (defaults to app-bundler.yaml next to the executable).
	ConfigPath string
	// Clean requests removal of prior build output before packaging.
	Clean bool
	// Target overrides the build platform; empty means the host platform.
	Target platform.Platform
}

// errBuildInProgress indicates another build holds the marker for the
// same configuration directory.
var errBuildInProgress = errors.New("another build is running now")

// Run executes the build pipeline and returns the stage log. The log is
// returned on failure too, so callers can surface which stage aborted
// the run.
func Run(ctx context.Context, opts *Options) (*RunState, error) {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "app-bundler")

	target := opts.Target
	if target == "" {
		target = platform.Current()
	}

	doc, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if IsBuildRunningNow(ctx, doc.Dir()) {
		return nil, errBuildInProgress
	}

	release, err := acquireMarker(doc.Dir())
	if err != nil {
		return nil, err
	}
	defer release()

	p := &pipeline{
		doc:    doc,
		target: target,
		clean:  opts.Clean,
		pkg:    &packager.PyInstaller{},
		lister: &signing.KeychainLister{},
		signer: &signing.Codesign{},
	}

	run, err := p.execute(ctx)
	if err != nil {
		return run, err
	}

	logger.InfoKV(ctx, "Build completed successfully", "bundle", run.Bundle)

	return run, nil
}
