// Package config loads the declarative build configuration and resolves it
// into one effective option set per target platform.
//
// A configuration file holds a base section plus up to three platform
// sections (windows, macos, linux). Resolution starts from base and
// overlays only the fields of the one matching platform section; nested
// objects are never merged beyond that single level. Relative paths are
// resolved against the directory of the configuration file, not the
// process working directory, so results do not depend on invocation
// location.
package config
