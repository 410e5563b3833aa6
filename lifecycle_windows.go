//go:build windows

package swiftresolv

import "golang.org/x/sys/windows"

// Winsock 2.2, the version the adapter query APIs are documented against.
const winsockVersion = 0x0202

func platformInit() error {
	var data windows.WSAData
	return windows.WSAStartup(winsockVersion, &data)
}

func platformTeardown() {
	_ = windows.WSACleanup()
}
