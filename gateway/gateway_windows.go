//go:build windows

package gateway

import (
	"encoding/binary"
	"net"
	"os/exec"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	iphlpapi         = windows.NewLazySystemDLL("iphlpapi.dll")
	procGetBestRoute = iphlpapi.NewProc("GetBestRoute")
)

// MIB_IPFORWARDROW, fixed layout.
type mibIPForwardRow struct {
	ForwardDest      uint32
	ForwardMask      uint32
	ForwardPolicy    uint32
	ForwardNextHop   uint32
	ForwardIfIndex   uint32
	ForwardType      uint32
	ForwardProto     uint32
	ForwardAge       uint32
	ForwardNextHopAS uint32
	ForwardMetric1   uint32
	ForwardMetric2   uint32
	ForwardMetric3   uint32
	ForwardMetric4   uint32
	ForwardMetric5   uint32
}

// DiscoverGatewayIPv4 asks the forwarding table for the best route to
// 0.0.0.0 and returns its next hop.
func DiscoverGatewayIPv4() (net.IP, error) {
	var row mibIPForwardRow

	ret, _, _ := procGetBestRoute.Call(0, 0, uintptr(unsafe.Pointer(&row)))
	if ret != 0 {
		return nil, windows.Errno(ret)
	}

	if row.ForwardNextHop == 0 {
		return nil, ErrNoGateway
	}

	// The next hop DWORD is in network byte order; writing it out
	// little-endian reproduces the original byte sequence.
	ip := make(net.IP, net.IPv4len)
	binary.LittleEndian.PutUint32(ip, row.ForwardNextHop)

	return ip, nil
}

// DiscoverGatewayIPv6 parses the IPv6 routing table; there is no DWORD
// shortcut for v6 routes.
func DiscoverGatewayIPv6() (net.IP, error) {
	cmd := exec.Command("route", "print", "-6", "::/0")
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(output), "\n")
	for i, line := range lines {
		if !strings.Contains(line, "Active Routes") {
			continue
		}
		if len(lines) <= i+2 {
			return nil, ErrNoGateway
		}

		fields := strings.Fields(lines[i+2])
		if len(fields) < 4 {
			return nil, ErrCantParse
		}

		gateway := net.ParseIP(fields[3])
		if gateway == nil {
			return nil, ErrCantParse
		}
		return gateway, nil
	}

	return nil, ErrNoGateway
}
