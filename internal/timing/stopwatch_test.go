package timing

import (
	"testing"
	"time"
)

func TestStopwatch(t *testing.T) {
	sw := Start()
	time.Sleep(10 * time.Millisecond)
	elapsed := sw.Stop()

	if elapsed < 10*time.Millisecond {
		t.Errorf("expected at least 10ms, got %v", elapsed)
	}
	if elapsed < 0 {
		t.Errorf("elapsed must be non-negative, got %v", elapsed)
	}
}

func TestStopwatch_StopFreezes(t *testing.T) {
	sw := Start()
	first := sw.Stop()
	time.Sleep(5 * time.Millisecond)
	second := sw.Stop()

	if first != second {
		t.Errorf("Stop after Stop changed the reading: %v vs %v", first, second)
	}
	if sw.Elapsed() != first {
		t.Errorf("Elapsed after Stop = %v, want %v", sw.Elapsed(), first)
	}
}

func TestStopwatch_ElapsedWhileRunning(t *testing.T) {
	sw := Start()
	a := sw.Elapsed()
	time.Sleep(2 * time.Millisecond)
	b := sw.Elapsed()

	if b < a {
		t.Errorf("elapsed went backwards: %v then %v", a, b)
	}
}

func TestStopwatch_Seconds(t *testing.T) {
	sw := Start()
	secs := sw.Seconds()
	if secs < 0 {
		t.Errorf("Seconds() = %f, want non-negative", secs)
	}
	if secs != sw.Stop().Seconds() {
		t.Errorf("Seconds() disagrees with the frozen reading")
	}
}
