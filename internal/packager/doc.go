// Package packager wraps the native packaging tool behind an interface
// consuming the resolved option set and producing the raw bundle.
//
// The PyInstaller adapter assembles the tool's argument list from the
// configuration; assembly is separated from invocation so it stays
// testable without the tool installed.
package packager
