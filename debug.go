//go:build hudspritedebug
// +build hudspritedebug

package hudsprite

const debug = true
