//go:build !windows && !linux && !darwin

package swiftutils

import "errors"

func FlushDNSCache() error {
	return errors.New("dns cache flush not supported on this platform")
}
