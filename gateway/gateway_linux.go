//go:build linux

package gateway

import (
	"fmt"
	"net"

	"github.com/vishvananda/netlink"
)

// DiscoverGatewayIPv4 finds the IPv4 default gateway.
func DiscoverGatewayIPv4() (net.IP, error) {
	return discoverGateway(netlink.FAMILY_V4)
}

// DiscoverGatewayIPv6 finds the IPv6 default gateway.
func DiscoverGatewayIPv6() (net.IP, error) {
	return discoverGateway(netlink.FAMILY_V6)
}

// discoverGateway walks the routing table looking for a default route with
// a next hop.
func discoverGateway(family int) (net.IP, error) {
	routes, err := netlink.RouteList(nil, family)
	if err != nil {
		return nil, fmt.Errorf("failed to get route list: %w", err)
	}

	for _, route := range routes {
		if (route.Dst == nil || route.Dst.IP.IsUnspecified()) && route.Gw != nil {
			return route.Gw, nil
		}
	}

	return nil, ErrNoGateway
}
