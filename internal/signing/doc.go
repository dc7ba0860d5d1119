// Package signing selects a code-signing identity and applies a signature
// to the packaged macOS bundle.
//
// Identity selection is a pure function over the names reported by the
// identity store; the store itself (the OS keychain) and the signing tool
// are external collaborators reached through the Lister and Signer
// interfaces. Preference order is data, not control flow, so extending it
// never touches the selection algorithm.
package signing
