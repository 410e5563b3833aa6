//go:build darwin

package gateway

import (
	"net"
	"os/exec"
	"strings"
)

// DiscoverGatewayIPv4 finds the IPv4 default gateway.
func DiscoverGatewayIPv4() (net.IP, error) {
	return discoverGateway("-inet")
}

// DiscoverGatewayIPv6 finds the IPv6 default gateway.
func DiscoverGatewayIPv6() (net.IP, error) {
	return discoverGateway("-inet6")
}

func discoverGateway(family string) (net.IP, error) {
	output, err := exec.Command("route", "-n", "get", family, "default").CombinedOutput()
	if err != nil {
		return nil, err
	}

	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "gateway:") {
			continue
		}

		gateway := net.ParseIP(strings.TrimSpace(strings.TrimPrefix(line, "gateway:")))
		if gateway == nil {
			return nil, ErrCantParse
		}
		return gateway, nil
	}

	return nil, ErrNoGateway
}
