// Package builder drives the build pipeline that turns one declarative
// configuration into a platform-native distributable.
//
// A run executes the fixed stage order clean, resolve, package, metadata,
// sign, finalize. Each stage appends exactly one result to the run's stage
// log before the pipeline moves on; the log is returned to the caller on
// success and on failure so the aborting stage and error are always
// identifiable. The only non-fatal stage error is a missing signing
// identity, which degrades the run to an unsigned success.
package builder
