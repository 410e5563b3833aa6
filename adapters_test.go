package swiftresolv

import (
	"net"
	"testing"

	"github.com/SyNdicateFoundation/swiftresolv/swiftutils"
	"github.com/SyNdicateFoundation/swiftresolv/swiftypes"
	"github.com/stretchr/testify/require"
)

func TestBuildAdaptersSnapshot(t *testing.T) {
	raw := []rawAdapter{
		{
			name:       "Ethernet0",
			index:      4,
			up:         true,
			dnsServers: []net.IP{net.ParseIP("8.8.8.8"), net.ParseIP("8.8.4.4")},
		},
	}

	adapters, err := buildAdapters(raw)
	require.NoError(t, err)
	require.Len(t, adapters, 1)
	require.Equal(t, "Ethernet0", adapters[0].Name)
	require.Equal(t, 4, adapters[0].Index)
	require.Equal(t, []string{"8.8.8.8", "8.8.4.4"}, swiftutils.FormatIPs(adapters[0].DNSServers))
}

func TestBuildAdaptersSkipsDownAndLoopback(t *testing.T) {
	raw := []rawAdapter{
		{name: "eth0", index: 2, up: true},
		{name: "eth1", index: 3, up: false},
		{name: "lo", index: 1, up: true, loopback: true},
	}

	adapters, err := buildAdapters(raw)
	require.NoError(t, err)
	require.Len(t, adapters, 1)
	require.Equal(t, "eth0", adapters[0].Name)
}

func TestBuildAdaptersDedupes(t *testing.T) {
	raw := []rawAdapter{
		{name: "eth0", index: 2, up: true, dnsServers: []net.IP{net.ParseIP("1.1.1.1")}},
		{name: "eth0", index: 7, up: true, dnsServers: []net.IP{net.ParseIP("9.9.9.9")}},
	}

	adapters, err := buildAdapters(raw)
	require.NoError(t, err)
	require.Len(t, adapters, 1)

	// First occurrence wins.
	require.Equal(t, 2, adapters[0].Index)
	require.Equal(t, []string{"1.1.1.1"}, swiftutils.FormatIPs(adapters[0].DNSServers))
}

func TestBuildAdaptersPreservesOrder(t *testing.T) {
	raw := []rawAdapter{
		{name: "wlan0", index: 3, up: true},
		{name: "eth0", index: 2, up: true},
		{name: "tun0", index: 9, up: true},
	}

	adapters, err := buildAdapters(raw)
	require.NoError(t, err)

	names := make([]string, len(adapters))
	for i, a := range adapters {
		names[i] = a.Name
	}
	require.Equal(t, []string{"wlan0", "eth0", "tun0"}, names)
}

func TestBuildAdaptersEmptyInput(t *testing.T) {
	adapters, err := buildAdapters(nil)
	require.NoError(t, err)
	require.NotNil(t, adapters)
	require.Empty(t, adapters)
}

func TestBuildAdaptersRejectsEmptyName(t *testing.T) {
	raw := []rawAdapter{
		{name: "eth0", index: 2, up: true},
		{name: "", index: 3, up: true},
	}

	adapters, err := buildAdapters(raw)
	require.ErrorIs(t, err, ErrMarshal)

	// Failure is atomic: no partial result.
	require.Nil(t, adapters)
}

func TestBuildAdaptersNeverReturnsNilDNSList(t *testing.T) {
	adapters, err := buildAdapters([]rawAdapter{{name: "eth0", index: 2, up: true}})
	require.NoError(t, err)
	require.NotNil(t, adapters[0].DNSServers)
	require.Empty(t, adapters[0].DNSServers)
	require.NotNil(t, adapters[0].SearchDomains)
}

func TestBuildAdaptersCopiesBackendSlices(t *testing.T) {
	servers := []net.IP{net.ParseIP("8.8.8.8")}
	domains := []string{"corp.example.com"}
	raw := []rawAdapter{{name: "eth0", index: 2, up: true, dnsServers: servers, searchDomains: domains}}

	adapters, err := buildAdapters(raw)
	require.NoError(t, err)

	servers[0][len(servers[0])-1] = 9
	domains[0] = "mutated"

	require.Equal(t, []string{"8.8.8.8"}, swiftutils.FormatIPs(adapters[0].DNSServers))
	require.Equal(t, []string{"corp.example.com"}, adapters[0].SearchDomains)
}

func TestBuildAdaptersIdempotent(t *testing.T) {
	raw := []rawAdapter{
		{name: "eth0", index: 2, up: true, dnsServers: []net.IP{net.ParseIP("8.8.8.8")}, searchDomains: []string{"example.com"}},
		{name: "wlan0", index: 3, up: true},
	}

	first, err := buildAdapters(raw)
	require.NoError(t, err)

	second, err := buildAdapters(raw)
	require.NoError(t, err)

	require.True(t, swiftypes.EqualAdapters(first, second))
}
