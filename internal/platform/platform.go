package platform

import (
	"fmt"
	"runtime"
)

// Platform is the build target operating system.
type Platform string

const (
	// Windows targets a Windows executable with a version-info resource.
	Windows Platform = "windows"
	// MacOS targets a macOS .app bundle with an Info.plist and code signature.
	MacOS Platform = "macos"
	// Linux targets a Linux binary with a .desktop entry.
	Linux Platform = "linux"
)

// Current returns the platform of the host the build runs on.
func Current() Platform {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	default:
		return Linux
	}
}

// Parse converts a configuration section name into a Platform.
func Parse(s string) (Platform, error) {
	switch Platform(s) {
	case Windows, MacOS, Linux:
		return Platform(s), nil
	default:
		return "", fmt.Errorf("unknown platform %q", s)
	}
}

// ExecutableExtension returns ".exe" on Windows and "" elsewhere.
func (p Platform) ExecutableExtension() string {
	if p == Windows {
		return ".exe"
	}

	return ""
}

// BundleExtension returns the extension of the packaged artifact:
// ".exe" on Windows, ".app" on macOS, "" on Linux.
func (p Platform) BundleExtension() string {
	switch p {
	case Windows:
		return ".exe"
	case MacOS:
		return ".app"
	default:
		return ""
	}
}

// IconExtension returns the icon format conventional for the platform.
func (p Platform) IconExtension() string {
	switch p {
	case Windows:
		return ".ico"
	case MacOS:
		return ".icns"
	default:
		return ".png"
	}
}
