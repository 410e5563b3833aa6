//go:build windows

package swiftresolv

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Unicast, anycast and multicast addresses are not needed here; DNS server
// addresses are.
const adapterQueryFlags = windows.GAA_FLAG_SKIP_UNICAST |
	windows.GAA_FLAG_SKIP_ANYCAST |
	windows.GAA_FLAG_SKIP_MULTICAST

func queryAdapters() ([]rawAdapter, error) {
	first, err := adapterAddresses()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAdaptersAddresses: %v", ErrOSQuery, err)
	}

	var raw []rawAdapter
	for aa := first; aa != nil; aa = aa.Next {
		r, err := convertAdapter(aa)
		if err != nil {
			return nil, err
		}

		raw = append(raw, r)
	}

	return raw, nil
}

// adapterAddresses calls GetAdaptersAddresses with a 15 KB initial buffer,
// growing it on ERROR_BUFFER_OVERFLOW for up to three attempts as the
// documentation recommends.
func adapterAddresses() (*windows.IpAdapterAddresses, error) {
	size := uint32(15000)

	for tries := 0; tries < 3; tries++ {
		buf := make([]byte, size)
		first := (*windows.IpAdapterAddresses)(unsafe.Pointer(&buf[0]))

		err := windows.GetAdaptersAddresses(windows.AF_UNSPEC, adapterQueryFlags, 0, first, &size)
		if err == nil {
			if size == 0 {
				return nil, nil
			}
			return first, nil
		}
		if errors.Is(err, windows.ERROR_NO_DATA) {
			// No adapters at all: an empty snapshot, not a failure.
			return nil, nil
		}
		if !errors.Is(err, windows.ERROR_BUFFER_OVERFLOW) || size <= uint32(len(buf)) {
			return nil, err
		}
	}

	return nil, errors.New("adapter list kept growing")
}

func convertAdapter(aa *windows.IpAdapterAddresses) (rawAdapter, error) {
	r := rawAdapter{
		name:     windows.UTF16PtrToString(aa.FriendlyName),
		index:    int(aa.IfIndex),
		up:       aa.OperStatus == windows.IfOperStatusUp,
		loopback: aa.IfType == windows.IF_TYPE_SOFTWARE_LOOPBACK,
	}

	if r.name == "" {
		r.name = windows.UTF16PtrToString(aa.Description)
	}
	if r.name == "" {
		r.name = windows.BytePtrToString(aa.AdapterName)
	}
	if r.index == 0 {
		// IPv6-only adapters report their index here instead.
		r.index = int(aa.Ipv6IfIndex)
	}

	for dns := aa.FirstDnsServerAddress; dns != nil; dns = dns.Next {
		ip := dns.Address.IP()
		if ip == nil {
			return rawAdapter{}, fmt.Errorf("%w: unknown address family for DNS server on adapter %q", ErrMarshal, r.name)
		}
		r.dnsServers = append(r.dnsServers, ip)
	}

	if suffix := windows.UTF16PtrToString(aa.DnsSuffix); suffix != "" {
		r.searchDomains = append(r.searchDomains, suffix)
	}

	return r, nil
}
