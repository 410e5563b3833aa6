//go:build darwin

package swiftutils

import "os/exec"

// FlushDNSCache purges the system resolver cache and nudges mDNSResponder.
func FlushDNSCache() error {
	if err := exec.Command("dscacheutil", "-flushcache").Run(); err != nil {
		return err
	}

	return exec.Command("killall", "-HUP", "mDNSResponder").Run()
}
