//go:build linux

package swiftutils

import "os/exec"

// FlushDNSCache asks systemd-resolved to drop its caches.
func FlushDNSCache() error {
	return exec.Command("resolvectl", "flush-caches").Run()
}
