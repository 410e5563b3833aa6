package swiftypes

import (
	"fmt"
	"net"
	"strings"
)

// Adapter is a snapshot of one network adapter's DNS configuration.
// Constructed fresh on every query from live OS state and never mutated
// afterwards.
type Adapter struct {
	Name          string   `json:"name"`
	Index         int      `json:"index"`
	DNSServers    []net.IP `json:"dnsServers"`
	SearchDomains []string `json:"searchDomains"`
}

func (a Adapter) String() string {
	servers := make([]string, len(a.DNSServers))
	for i, server := range a.DNSServers {
		servers[i] = server.String()
	}
	return fmt.Sprintf("Adapter{Name: %q, Index: %d, DNSServers: [%s], SearchDomains: [%s]}",
		a.Name, a.Index, strings.Join(servers, " "), strings.Join(a.SearchDomains, " "))
}

// Equal reports whether two snapshots carry the same configuration.
// Order matters: the OS enumeration order is part of the snapshot.
func (a Adapter) Equal(b Adapter) bool {
	if a.Name != b.Name || a.Index != b.Index {
		return false
	}
	if len(a.DNSServers) != len(b.DNSServers) || len(a.SearchDomains) != len(b.SearchDomains) {
		return false
	}
	for i := range a.DNSServers {
		if !a.DNSServers[i].Equal(b.DNSServers[i]) {
			return false
		}
	}
	for i := range a.SearchDomains {
		if a.SearchDomains[i] != b.SearchDomains[i] {
			return false
		}
	}
	return true
}

// EqualAdapters reports whether two query results are identical snapshots.
func EqualAdapters(a, b []Adapter) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
