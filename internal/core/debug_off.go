//go:build !lifedebug

package core

// DebugChecks enables invariant assertions on hot paths. Build with the
// lifedebug tag to turn them on.
const DebugChecks = false
