package ratelimit_test

import (
	"testing"

	"pourpal-backoffice/pkg/ratelimit"
)

func TestLimiter(t *testing.T) {
	rl := ratelimit.New(10) // burst 1

	if err := rl.Allow("10.0.0.1"); err != nil {
		t.Fatalf("first attempt should pass: %v", err)
	}
	if err := rl.Allow("10.0.0.1"); err == nil {
		t.Errorf("second immediate attempt should be limited")
	}
	if err := rl.Allow("10.0.0.2"); err != nil {
		t.Errorf("other source should not be limited: %v", err)
	}
}
