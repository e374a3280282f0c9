//go:build !hudspritedebug
// +build !hudspritedebug

package hudsprite

// Precondition checks are only compiled in with -tags hudspritedebug.
const debug = false
