//go:build !windows

package swiftresolv

// No process-wide networking state to manage outside Windows.

func platformInit() error { return nil }

func platformTeardown() {}
