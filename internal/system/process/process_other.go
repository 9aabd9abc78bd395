// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)
// +build !aix,!darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris

// Package process lets an interactive session take control of its terminal.
package process

// BecomeForegroundGroup is a no-op on platforms without job control.
func BecomeForegroundGroup() error {
	return nil
}
