//go:build windows

package swiftutils

import (
	"errors"

	"golang.org/x/sys/windows"
)

var (
	dnsapi                = windows.NewLazySystemDLL("dnsapi.dll")
	dnsFlushResolverCache = dnsapi.NewProc("DnsFlushResolverCache")
)

// FlushDNSCache purges the system resolver cache via the native dnsapi call.
func FlushDNSCache() error {
	ret, _, _ := dnsFlushResolverCache.Call()
	if ret == 0 {
		return errors.New("failed to flush dns cache via native api")
	}

	return nil
}
