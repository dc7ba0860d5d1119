// Package metadata synthesizes platform-native auxiliary descriptors from
// the resolved build configuration: a version-info resource on Windows, an
// Info.plist on macOS and a desktop entry on Linux.
//
// Rendering is a pure transformation of the configuration. Descriptors are
// rendered fully in memory and only then written, so a descriptor file on
// disk is always complete, never truncated by a failed stage.
package metadata
