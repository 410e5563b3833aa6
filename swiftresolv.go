// Package swiftresolv reports the host operating system's network adapter
// and DNS configuration. A single call, Adapters, returns a point-in-time
// snapshot of every up, non-loopback adapter together with its configured
// DNS servers and search domains. The snapshot is built fresh on every call
// and never cached.
package swiftresolv

import (
	"fmt"
	"net"

	"github.com/SyNdicateFoundation/swiftresolv/swiftypes"
)

// rawAdapter is one adapter as reported by the platform backend, before
// filtering and validation.
type rawAdapter struct {
	name          string
	index         int
	up            bool
	loopback      bool
	dnsServers    []net.IP
	searchDomains []string
}

// Adapters returns one entry per network adapter the OS reports as up,
// excluding loopback, in OS enumeration order. The caller owns the result.
// On failure no partial result is returned: the error wraps ErrOSQuery when
// the OS enumeration itself failed and ErrMarshal when the enumerated data
// could not be converted.
func Adapters() ([]swiftypes.Adapter, error) {
	raw, err := queryAdapters()
	if err != nil {
		return nil, err
	}

	return buildAdapters(raw)
}

// buildAdapters converts backend records into caller-visible adapters.
// Down and loopback adapters are dropped; duplicate names keep the first
// occurrence only. Backend slices are copied so the snapshot cannot alias
// backend state.
func buildAdapters(raw []rawAdapter) ([]swiftypes.Adapter, error) {
	adapters := make([]swiftypes.Adapter, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for _, r := range raw {
		if !r.up || r.loopback {
			continue
		}

		if r.name == "" {
			return nil, fmt.Errorf("%w: adapter with empty name at index %d", ErrMarshal, r.index)
		}

		if seen[r.name] {
			continue
		}
		seen[r.name] = true

		adapters = append(adapters, swiftypes.Adapter{
			Name:          r.name,
			Index:         r.index,
			DNSServers:    cloneIPs(r.dnsServers),
			SearchDomains: append([]string{}, r.searchDomains...),
		})
	}

	return adapters, nil
}

func cloneIPs(ips []net.IP) []net.IP {
	out := make([]net.IP, len(ips))
	for i, ip := range ips {
		out[i] = append(net.IP(nil), ip...)
	}
	return out
}
