package entity

import "testing"

func TestIsValidStatus(t *testing.T) {
	t.Parallel()

	for _, s := range ValidStatuses {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = false, want true", s)
		}
	}

	// Matching is case-sensitive and exact.
	for _, s := range []string{"available", "DEPLOYED", "Destroyed ", "Retired", ""} {
		if IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = true, want false", s)
		}
	}
}
