package countdown

import "testing"

func TestTickCountsDown(t *testing.T) {
	timer := Start(3)

	timer, expired := timer.Tick()
	if expired || timer.Remaining != 2 {
		t.Fatalf("after 1 tick: remaining=%d expired=%v", timer.Remaining, expired)
	}

	timer, expired = timer.Tick()
	if expired || timer.Remaining != 1 {
		t.Fatalf("after 2 ticks: remaining=%d expired=%v", timer.Remaining, expired)
	}
}

func TestExpiresExactlyOnce(t *testing.T) {
	timer := Start(1)

	timer, expired := timer.Tick()
	if !expired {
		t.Fatal("want expired on transition to zero")
	}
	if timer.Running {
		t.Error("timer should stop on expiry")
	}

	// Further ticks never re-fire.
	timer, expired = timer.Tick()
	if expired {
		t.Error("expiry fired twice")
	}
	if timer.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", timer.Remaining)
	}
}

func TestStopPreventsExpiry(t *testing.T) {
	timer := Start(1).Stop()

	timer, expired := timer.Tick()
	if expired {
		t.Error("stopped timer expired")
	}
	if timer.Remaining != 1 {
		t.Errorf("remaining = %d, want 1", timer.Remaining)
	}
	if timer.Expired() {
		t.Error("stopped timer with time left reported Expired")
	}
}

func TestStartClampsNegative(t *testing.T) {
	timer := Start(-5)
	if timer.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", timer.Remaining)
	}
}

func TestZeroValueIsInert(t *testing.T) {
	var timer Timer
	timer, expired := timer.Tick()
	if expired || timer.Remaining != 0 {
		t.Errorf("zero timer ticked: remaining=%d expired=%v", timer.Remaining, expired)
	}
}
