// Package platform identifies the build target platform and its
// platform-specific file conventions (executable and icon extensions).
//
// Stage handlers in the build pipeline dispatch on Platform and must
// handle all three values or explicitly no-op.
package platform
