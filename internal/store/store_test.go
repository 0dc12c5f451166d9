package store

import (
	"testing"
	"time"
)

func TestIDGenerator_MonotonicWithinSameMillisecond(t *testing.T) {
	frozen := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	g := NewIDGeneratorWithClock(func() time.Time { return frozen })

	first := g.Next()
	if first != frozen.UnixMilli() {
		t.Errorf("first id = %d, want %d", first, frozen.UnixMilli())
	}
	prev := first
	for i := 0; i < 100; i++ {
		id := g.Next()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestIDGenerator_FollowsClock(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	g := NewIDGeneratorWithClock(func() time.Time { return now })

	first := g.Next()
	now = now.Add(5 * time.Second)
	second := g.Next()
	if second != first+5000 {
		t.Errorf("second id = %d, want clock-advanced %d", second, first+5000)
	}
}
