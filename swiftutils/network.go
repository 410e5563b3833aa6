package swiftutils

import "net"

// FormatIPs renders IPs as strings, preserving order.
func FormatIPs(ips []net.IP) []string {
	out := make([]string, len(ips))
	for i, ip := range ips {
		out[i] = ip.String()
	}
	return out
}
