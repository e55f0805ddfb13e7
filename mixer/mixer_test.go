package mixer

import "testing"

func TestControlSetLevelImmediate(t *testing.T) {
	var c Control
	c.SetLevel(0, 1000, 4)
	c.SetLevel(0, 50, 0)
	if c.CurLevel != 50 || c.FadeSteps != 0 {
		t.Fatalf("got level=%d steps=%d, want level=50 steps=0", c.CurLevel, c.FadeSteps)
	}
}

func TestControlFadeReachesTarget(t *testing.T) {
	var c Control
	c.CurLevel = 0
	c.SetLevel(0, 100, 10)
	for i := 0; i < 10; i++ {
		c.Advance()
	}
	if c.CurLevel != 100 {
		t.Fatalf("after fade, level=%d, want 100", c.CurLevel)
	}
	if c.FadeSteps != 0 {
		t.Fatalf("fade steps not drained, got %d", c.FadeSteps)
	}
}

func TestControlFadeZeroStepsIsImmediate(t *testing.T) {
	var c Control
	c.CurLevel = 0
	c.SetLevel(0, 200, 0)
	if c.CurLevel != 200 {
		t.Fatalf("zero-step fade did not set immediately, got %d", c.CurLevel)
	}
}

func TestControlSetLevelModes(t *testing.T) {
	var c Control
	c.CurLevel = 100
	c.SetLevel(1, 50, 0)
	if c.CurLevel != 150 {
		t.Fatalf("increase mode gave %d, want 150", c.CurLevel)
	}
	c.SetLevel(2, 30, 0)
	if c.CurLevel != 120 {
		t.Fatalf("decrease mode gave %d, want 120", c.CurLevel)
	}
}

func TestControlTargetClamped(t *testing.T) {
	var c Control
	c.SetLevel(0, 30000, 0)
	if c.CurLevel != MaxLevel {
		t.Fatalf("level not clamped to max, got %d", c.CurLevel)
	}
	c.SetLevel(0, -30000, 0)
	if c.CurLevel != -MaxLevel {
		t.Fatalf("level not clamped to min, got %d", c.CurLevel)
	}
}

func TestAdvanceClampsOvershoot(t *testing.T) {
	var c Control
	c.CurLevel = 8000
	c.FadeTargetLevel = 8191
	c.FadeDelta = 500
	c.FadeSteps = 3
	c.Advance()
	if c.CurLevel != MaxLevel {
		t.Fatalf("intermediate fade step not clamped, got %d", c.CurLevel)
	}
}

func TestAdvanceNoFadeNoOp(t *testing.T) {
	var c Control
	c.CurLevel = 42
	c.Advance()
	if c.CurLevel != 42 {
		t.Fatalf("Advance with no fade in progress changed level to %d", c.CurLevel)
	}
}

func TestMasterVolumeMuteAtZero(t *testing.T) {
	if got := MasterVolumeMultiplier(0); got != 0 {
		t.Fatalf("volume 0 gave multiplier %d, want 0", got)
	}
}

func TestMasterVolumeMonotonic(t *testing.T) {
	var prev uint16
	for v := 1; v <= 0xFF; v++ {
		got := MasterVolumeMultiplier(byte(v))
		if v > 1 && got < prev {
			t.Fatalf("master volume curve not monotonic at %d: %d < %d", v, got, prev)
		}
		prev = got
	}
}

func TestAggregateMultiplierMaxOverride(t *testing.T) {
	a := AggregateMultiplier(0, false, 0x80, true)
	b := AggregateMultiplier(-MaxLevel, false, 0x80, true)
	if a != b {
		t.Fatalf("maxOverride should ignore sum: got %d vs %d", a, b)
	}
}

func TestAggregateMultiplierOS93aSeed(t *testing.T) {
	got := AggregateMultiplier(MaxLevel, true, 0, false)
	if got == 0 {
		t.Fatalf("OS93a loudest aggregate multiplier should not be zero")
	}
}
