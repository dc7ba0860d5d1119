package signing

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// Lister reports the signing identity names available on the host.
type Lister interface {
	ListIdentities(ctx context.Context) ([]string, error)
}

// KeychainLister queries the OS keychain through the security tool.
type KeychainLister struct {
	// Executable is the security binary, defaulting to "security" on PATH.
	Executable string
}

// quotedIdentity extracts the quoted identity name from a find-identity line,
// e.g. `  1) ABCD... "Developer ID Application: Example (TEAM)"`.
var quotedIdentity = regexp.MustCompile(`"([^"]+)"`)

// ListIdentities runs `security find-identity -v -p codesigning` and
// returns the identity names found in its output.
func (l *KeychainLister) ListIdentities(ctx context.Context) ([]string, error) {
	executable := l.Executable
	if executable == "" {
		executable = "security"
	}

	output, err := exec.CommandContext(ctx, executable, "find-identity", "-v", "-p", "codesigning").Output()
	if err != nil {
		return nil, fmt.Errorf("query keychain identities: %w", err)
	}

	return ParseIdentities(string(output)), nil
}

// ParseIdentities pulls identity names out of find-identity output,
// preserving their order of appearance.
func ParseIdentities(output string) []string {
	var names []string

	for _, line := range strings.Split(output, "\n") {
		if match := quotedIdentity.FindStringSubmatch(line); match != nil {
			names = append(names, match[1])
		}
	}

	return names
}
