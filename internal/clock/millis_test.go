// internal/clock/millis_test.go
package clock

import (
	"testing"
	"time"
)

func TestNowMS_StartsNearZero(t *testing.T) {
	m := NewMillis()
	if got := m.NowMS(); got > 100 {
		t.Fatalf("NowMS()=%d right after construction", got)
	}
}

func TestNowMS_NonDecreasing(t *testing.T) {
	m := NewMillis()
	a := m.NowMS()
	time.Sleep(5 * time.Millisecond)
	b := m.NowMS()
	if b < a {
		t.Fatalf("NowMS went backwards: %d -> %d", a, b)
	}
	if b == a {
		t.Fatalf("NowMS did not advance across a 5ms sleep")
	}
}
