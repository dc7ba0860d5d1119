package signing

import (
	"context"
	"fmt"
	"os/exec"
)

// Signer applies a code signature to a packaged artifact.
type Signer interface {
	Sign(ctx context.Context, artifact string, identity *Identity, entitlements string) error
}

// Codesign signs bundles through the codesign tool with hardened runtime
// options and verifies the resulting signature.
type Codesign struct {
	// Executable is the codesign binary, defaulting to "codesign" on PATH.
	Executable string
}

// Sign signs the artifact with the selected identity. The entitlements
// path is optional and passed through when non-empty.
func (s *Codesign) Sign(ctx context.Context, artifact string, identity *Identity, entitlements string) error {
	args := []string{"--force", "--deep", "--timestamp", "--options", "runtime"}
	if entitlements != "" {
		args = append(args, "--entitlements", entitlements)
	}

	args = append(args, "-s", identity.Name, artifact)

	if output, err := s.run(ctx, args); err != nil {
		return fmt.Errorf("codesign %s: %w: %s", artifact, err, output)
	}

	if output, err := s.run(ctx, []string{"--verify", "--deep", "--strict", artifact}); err != nil {
		return fmt.Errorf("verify signature of %s: %w: %s", artifact, err, output)
	}

	return nil
}

// run executes the codesign binary with the provided arguments.
func (s *Codesign) run(ctx context.Context, args []string) (string, error) {
	executable := s.Executable
	if executable == "" {
		executable = "codesign"
	}

	output, err := exec.CommandContext(ctx, executable, args...).CombinedOutput()

	return string(output), err
}
