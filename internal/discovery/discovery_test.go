package discovery

import (
	"context"
	"testing"
	"time"
)

// TestResolveRespectsContextDeadline exercises Resolve's wiring without
// depending on a real mDNS responder being present: with no service
// named "nonexistent-instance" on the network, Resolve must return once
// the deadline passes rather than blocking forever.
func TestResolveRespectsContextDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := Resolve(ctx, "nonexistent-instance")
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected an error when no matching instance is on the network")
	}
	if elapsed > 2*time.Second {
		t.Fatalf("Resolve did not return promptly after context deadline: took %v", elapsed)
	}
}
