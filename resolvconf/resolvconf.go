// Package resolvconf reads resolver configuration in resolv.conf format.
package resolvconf

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/miekg/dns"
)

// Path is the resolver configuration file consulted by default.
const Path = "/etc/resolv.conf"

// ErrBadNameserver reports a nameserver entry that is not an IP address.
var ErrBadNameserver = errors.New("invalid nameserver entry")

// Config is the subset of resolver configuration adapters carry.
type Config struct {
	Nameservers   []net.IP
	SearchDomains []string
}

// ReadFile parses the resolv.conf style file at path.
func ReadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open resolver config: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse parses resolv.conf content from r, preserving entry order.
func Parse(r io.Reader) (*Config, error) {
	cc, err := dns.ClientConfigFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resolver config: %w", err)
	}

	conf := &Config{SearchDomains: cc.Search}
	for _, server := range cc.Servers {
		ip := net.ParseIP(server)
		if ip == nil {
			return nil, fmt.Errorf("%w: %q", ErrBadNameserver, server)
		}
		conf.Nameservers = append(conf.Nameservers, ip)
	}

	return conf, nil
}
