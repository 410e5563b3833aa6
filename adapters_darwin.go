//go:build darwin

package swiftresolv

import (
	"fmt"
	"net"
	"os/exec"
	"strings"
)

// queryAdapters maps networksetup hardware ports to their devices and reads
// the DNS configuration of each network service. Hardware ports without a
// live interface (an unplugged Thunderbolt bridge, say) are skipped.
func queryAdapters() ([]rawAdapter, error) {
	ports, err := listHardwarePorts()
	if err != nil {
		return nil, fmt.Errorf("%w: networksetup: %v", ErrOSQuery, err)
	}

	raw := make([]rawAdapter, 0, len(ports))
	for _, p := range ports {
		ifi, err := net.InterfaceByName(p.device)
		if err != nil {
			continue
		}

		servers, err := dnsServersForService(p.name)
		if err != nil {
			return nil, err
		}

		domains, err := searchDomainsForService(p.name)
		if err != nil {
			return nil, err
		}

		raw = append(raw, rawAdapter{
			name:          p.device,
			index:         ifi.Index,
			up:            ifi.Flags&net.FlagUp != 0,
			loopback:      ifi.Flags&net.FlagLoopback != 0,
			dnsServers:    servers,
			searchDomains: domains,
		})
	}

	return raw, nil
}

type hardwarePort struct {
	name   string // service name, e.g. "Wi-Fi"
	device string // BSD device name, e.g. "en0"
}

func listHardwarePorts() ([]hardwarePort, error) {
	output, err := exec.Command("networksetup", "-listallhardwareports").Output()
	if err != nil {
		return nil, err
	}

	var ports []hardwarePort
	var current hardwarePort
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Hardware Port: "):
			current = hardwarePort{name: strings.TrimPrefix(line, "Hardware Port: ")}
		case strings.HasPrefix(line, "Device: "):
			current.device = strings.TrimPrefix(line, "Device: ")
			if current.name != "" && current.device != "" {
				ports = append(ports, current)
			}
		}
	}

	return ports, nil
}

func dnsServersForService(service string) ([]net.IP, error) {
	lines, err := networkSetupLines("-getdnsservers", service, "There aren't any DNS Servers")
	if err != nil {
		return nil, err
	}

	var servers []net.IP
	for _, line := range lines {
		ip := net.ParseIP(line)
		if ip == nil {
			return nil, fmt.Errorf("%w: invalid DNS server %q for service %q", ErrMarshal, line, service)
		}
		servers = append(servers, ip)
	}

	return servers, nil
}

func searchDomainsForService(service string) ([]string, error) {
	return networkSetupLines("-getsearchdomains", service, "There aren't any Search Domains")
}

// networkSetupLines runs a networksetup query and returns its non-empty
// output lines. emptyMarker is the phrase networksetup prints when the
// setting is unset.
func networkSetupLines(verb, service, emptyMarker string) ([]string, error) {
	output, err := exec.Command("networksetup", verb, service).Output()
	if err != nil {
		return nil, fmt.Errorf("%w: networksetup %s %q: %v", ErrOSQuery, verb, service, err)
	}

	text := strings.TrimSpace(string(output))
	if text == "" || strings.Contains(text, emptyMarker) {
		return nil, nil
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return lines, nil
}
