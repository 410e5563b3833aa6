package swiftutils

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatIPs(t *testing.T) {
	ips := []net.IP{net.ParseIP("8.8.8.8"), net.ParseIP("2001:4860:4860::8888")}
	require.Equal(t, []string{"8.8.8.8", "2001:4860:4860::8888"}, FormatIPs(ips))
	require.Equal(t, []string{}, FormatIPs(nil))
}
