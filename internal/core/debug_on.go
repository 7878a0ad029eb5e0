//go:build lifedebug

package core

// DebugChecks enables invariant assertions on hot paths.
const DebugChecks = true
