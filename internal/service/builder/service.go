package builder

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/oshokin/app-bundler/internal/config"
	"github.com/oshokin/app-bundler/internal/logger"
	"github.com/oshokin/app-bundler/internal/metadata"
	"github.com/oshokin/app-bundler/internal/packager"
	"github.com/oshokin/app-bundler/internal/platform"
	"github.com/oshokin/app-bundler/internal/signing"
)

// pipeline executes the stage sequence for one run.
// It is unexported; callers use Run, which wires the real collaborators.
type pipeline struct {
	// doc is the raw configuration document the run was started with.
	doc *config.Document
	// target is the platform the run builds for.
	target platform.Platform
	// clean requests the cleaning stage.
	clean bool
	// pkg packages the application.
	pkg packager.Packager
	// lister reports available signing identities.
	lister signing.Lister
	// signer applies the code signature.
	signer signing.Signer

	// cfg is the effective configuration, set by the resolve stage.
	cfg *config.Config
	// bundle is the artifact path, set by the package stage.
	bundle string
}

// stageFunc executes one stage against the run and reports its outcome.
// A returned error aborts the pipeline; a skipped status carries its
// reason in detail.
type stageFunc func(ctx context.Context) (Status, string, error)

// execute runs the stages in fixed order, appending exactly one result per
// stage. On the first error the failure is recorded and the partial stage
// log is returned together with the error.
func (p *pipeline) execute(ctx context.Context) (*RunState, error) {
	run := &RunState{
		Platform:       p.target,
		CleanRequested: p.clean,
	}

	stages := []struct {
		stage Stage
		fn    stageFunc
	}{
		{StageClean, p.runClean},
		{StageResolve, p.runResolve},
		{StagePackage, p.runPackage},
		{StageMetadata, p.runMetadata},
		{StageSign, p.runSign},
		{StageFinalize, p.runFinalize},
	}

	for _, entry := range stages {
		status, detail, err := entry.fn(ctx)
		if err != nil {
			run.append(entry.stage, StatusFailed, err.Error())
			logger.ErrorKV(ctx, "Stage failed", "stage", entry.stage, "error", err)

			return run, fmt.Errorf("stage %s: %w", entry.stage, err)
		}

		run.append(entry.stage, status, detail)
		logger.InfoKV(ctx, "Stage finished", "stage", entry.stage, "status", status, "detail", detail)
	}

	run.Bundle = p.bundle

	return run, nil
}

// runClean removes the previous build and dist directories when requested.
// It works off the raw base section so a document that would fail
// resolution still gets its directories cleaned.
func (p *pipeline) runClean(_ context.Context) (Status, string, error) {
	if !p.clean {
		return StatusSkipped, "not requested", nil
	}

	buildDir, distDir := p.doc.OutputDirs()

	for _, dir := range []string{buildDir, distDir} {
		if err := os.RemoveAll(dir); err != nil {
			return "", "", fmt.Errorf("remove %s: %w", dir, err)
		}
	}

	return StatusOK, fmt.Sprintf("removed %s, %s", buildDir, distDir), nil
}

// runResolve merges the configuration for the target platform.
func (p *pipeline) runResolve(_ context.Context) (Status, string, error) {
	cfg, err := p.doc.Resolve(p.target)
	if err != nil {
		return "", "", err
	}

	p.cfg = cfg

	return StatusOK, fmt.Sprintf("%s %s for %s", cfg.AppName, cfg.Version, cfg.Platform), nil
}

// runPackage delegates to the packaging tool with a copy of the resolved
// options so an adapter cannot mutate the run's configuration.
func (p *pipeline) runPackage(ctx context.Context) (Status, string, error) {
	bundle, err := p.pkg.Package(ctx, p.cfg.Clone())
	if err != nil {
		return "", "", err
	}

	p.bundle = bundle

	return StatusOK, bundle, nil
}

// runMetadata writes the platform descriptor for the host platform.
func (p *pipeline) runMetadata(_ context.Context) (Status, string, error) {
	path, err := metadata.Inject(p.cfg)
	if err != nil {
		return "", "", err
	}

	return StatusOK, path, nil
}

// runSign signs the bundle on macOS. A missing signing identity degrades
// the run to an unsigned success; any other signing error is fatal.
func (p *pipeline) runSign(ctx context.Context) (Status, string, error) {
	if p.target != platform.MacOS {
		return StatusSkipped, fmt.Sprintf("not applicable on %s", p.target), nil
	}

	names, err := p.lister.ListIdentities(ctx)
	if err != nil {
		return "", "", fmt.Errorf("list identities: %w", err)
	}

	identity, err := signing.SelectIdentity(names)
	if errors.Is(err, signing.ErrNoIdentityFound) {
		logger.Warn(ctx, "No signing identity found, continuing unsigned")

		return StatusSkipped, signing.ErrNoIdentityFound.Error(), nil
	} else if err != nil {
		return "", "", err
	}

	if err = p.signer.Sign(ctx, p.bundle, identity, p.cfg.EntitlementsFile); err != nil {
		return "", "", err
	}

	return StatusOK, identity.Name, nil
}

// runFinalize records the finished artifact.
func (p *pipeline) runFinalize(ctx context.Context) (Status, string, error) {
	logger.InfoKV(ctx, "Build finished", "bundle", p.bundle)

	return StatusOK, p.bundle, nil
}
