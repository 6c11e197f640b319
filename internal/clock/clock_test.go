package clock

import (
	"sync"
	"testing"
	"time"
)

func TestManualFiresInTriggerOrder(t *testing.T) {
	m := NewManual(time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC))
	var got []string
	m.AfterFunc(80*time.Millisecond, func() { got = append(got, "later") })
	m.AfterFunc(20*time.Millisecond, func() { got = append(got, "sooner") })

	m.Advance(50 * time.Millisecond)
	if len(got) != 1 || got[0] != "sooner" {
		t.Fatalf("unexpected fired set after 50ms: %v", got)
	}
	m.Advance(50 * time.Millisecond)
	if len(got) != 2 || got[1] != "later" {
		t.Fatalf("unexpected fired set after 100ms: %v", got)
	}
	if m.Pending() != 0 {
		t.Fatalf("expected empty queue, got %d", m.Pending())
	}
}

func TestManualStopPreventsCallback(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	fired := false
	timer := m.AfterFunc(time.Second, func() { fired = true })
	if !timer.Stop() {
		t.Fatal("expected stop to report pending timer")
	}
	if timer.Stop() {
		t.Fatal("second stop should report false")
	}
	m.Advance(2 * time.Second)
	if fired {
		t.Fatal("stopped timer fired")
	}
}

func TestManualRearmInsideWindow(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	count := 0
	var rearm func()
	rearm = func() {
		count++
		m.AfterFunc(time.Second, rearm)
	}
	m.AfterFunc(time.Second, rearm)

	m.Advance(3 * time.Second)
	if count != 3 {
		t.Fatalf("expected 3 chained callbacks, got %d", count)
	}
	if want := time.Unix(3, 0); !m.Now().Equal(want) {
		t.Fatalf("now = %v, want %v", m.Now(), want)
	}
}

func TestManualStopAfterFireReportsFalse(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	timer := m.AfterFunc(time.Millisecond, func() {})
	m.Advance(time.Millisecond)
	if timer.Stop() {
		t.Fatal("stop after fire should report false")
	}
}

func TestSystemClockAfterFunc(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	System.AfterFunc(10*time.Millisecond, wg.Done)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for system clock callback")
	}
}
