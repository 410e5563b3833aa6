//go:build !windows && !linux && !darwin

package swiftresolv

func queryAdapters() ([]rawAdapter, error) {
	return nil, ErrUnsupported
}
