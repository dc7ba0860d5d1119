package builder

import "github.com/oshokin/app-bundler/internal/platform"

// Stage identifies one ordered step of the build pipeline.
type Stage string

const (
	// StageClean removes prior build and dist directories.
	StageClean Stage = "clean"
	// StageResolve merges the configuration into one effective option set.
	StageResolve Stage = "resolve"
	// StagePackage invokes the native packaging tool.
	StagePackage Stage = "package"
	// StageMetadata writes the platform descriptor next to the bundle.
	StageMetadata Stage = "metadata"
	// StageSign signs the bundle on macOS.
	StageSign Stage = "sign"
	// StageFinalize records the finished artifact.
	StageFinalize Stage = "finalize"
)

// Status is the outcome of one stage.
type Status string

const (
	// StatusOK marks a stage that completed its work.
	StatusOK Status = "ok"
	// StatusSkipped marks a stage that had nothing to do for this run.
	StatusSkipped Status = "skipped"
	// StatusFailed marks the stage that aborted the run.
	StatusFailed Status = "failed"
)

// StageResult is one entry of the run's audit trail.
type StageResult struct {
	// Stage names the pipeline step the result belongs to.
	Stage Stage
	// Status is the stage outcome.
	Status Status
	// Detail carries the artifact path, skip reason or error text.
	Detail string
}

// RunState is the state of one pipeline execution. It is owned by the pipeline
// for the run's lifetime, mutated only by appending stage results, and
// never shared across runs.
type RunState struct {
	// Platform is the target the run builds for.
	Platform platform.Platform
	// CleanRequested records whether the cleaning stage was asked for.
	CleanRequested bool
	// Stages is the ordered audit trail, one entry per executed stage.
	Stages []StageResult
	// Bundle is the path of the produced artifact, set once packaging
	// succeeds.
	Bundle string
}

// append records one stage outcome.
func (r *RunState) append(stage Stage, status Status, detail string) {
	r.Stages = append(r.Stages, StageResult{Stage: stage, Status: status, Detail: detail})
}

// Result returns the recorded outcome of a stage.
func (r *RunState) Result(stage Stage) (StageResult, bool) {
	for _, result := range r.Stages {
		if result.Stage == stage {
			return result, true
		}
	}

	return StageResult{}, false
}

// Failed reports whether any stage aborted the run.
func (r *RunState) Failed() bool {
	for _, result := range r.Stages {
		if result.Status == StatusFailed {
			return true
		}
	}

	return false
}
