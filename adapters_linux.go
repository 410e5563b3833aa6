//go:build linux

package swiftresolv

import (
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/SyNdicateFoundation/swiftresolv/resolvconf"
	"github.com/vishvananda/netlink"
)

// queryAdapters enumerates links via netlink. Linux keeps resolver
// configuration per host rather than per interface, so the resolv.conf
// nameservers and search domains are attached to every adapter. A missing
// resolv.conf means the host simply has no resolver configured, not a
// query failure.
func queryAdapters() ([]rawAdapter, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list links: %v", ErrOSQuery, err)
	}

	conf := &resolvconf.Config{}
	switch c, err := resolvconf.ReadFile(resolvconf.Path); {
	case err == nil:
		conf = c
	case errors.Is(err, resolvconf.ErrBadNameserver):
		return nil, fmt.Errorf("%w: %v", ErrMarshal, err)
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: %v", ErrOSQuery, err)
	}

	raw := make([]rawAdapter, 0, len(links))
	for _, link := range links {
		attrs := link.Attrs()

		raw = append(raw, rawAdapter{
			name:          attrs.Name,
			index:         attrs.Index,
			up:            attrs.Flags&net.FlagUp != 0,
			loopback:      attrs.Flags&net.FlagLoopback != 0,
			dnsServers:    conf.Nameservers,
			searchDomains: conf.SearchDomains,
		})
	}

	return raw, nil
}
