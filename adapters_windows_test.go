//go:build windows

package swiftresolv

import (
	"testing"

	"github.com/SyNdicateFoundation/swiftresolv/swiftypes"
)

func TestAdaptersLive(t *testing.T) {
	if err := Load(); err != nil {
		t.Fatal(err)
	}
	defer Unload()

	adapters, err := Adapters()
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)
	for _, a := range adapters {
		if a.Name == "" {
			t.Fatalf("adapter with empty name: %v", a)
		}
		if seen[a.Name] {
			t.Fatalf("duplicate adapter %q", a.Name)
		}
		seen[a.Name] = true

		t.Logf("%v", a)
	}

	again, err := Adapters()
	if err != nil {
		t.Fatal(err)
	}
	if !swiftypes.EqualAdapters(adapters, again) {
		t.Skip("adapter configuration changed between calls")
	}
}
