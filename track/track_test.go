package track

import (
	"testing"

	"github.com/ausocean/dcs/rom"
)

func TestLoopInfinite(t *testing.T) {
	ch := NewChannel()
	ch.PushLoop(0, rom.Addr(100))
	var pos rom.Addr = 200
	ch.PopLoop(&pos)
	if pos != 100 {
		t.Fatalf("infinite loop did not jump back, got %#x", pos)
	}
	if len(ch.LoopStack) != 1 {
		t.Fatalf("infinite loop frame was popped, stack len=%d", len(ch.LoopStack))
	}
}

func TestLoopFiniteCountsDown(t *testing.T) {
	ch := NewChannel()
	ch.PushLoop(2, rom.Addr(100))
	var pos rom.Addr = 200

	ch.PopLoop(&pos) // counter 2 -> 1, jumps back
	if pos != 100 || len(ch.LoopStack) != 1 {
		t.Fatalf("first iteration: pos=%#x stackLen=%d", pos, len(ch.LoopStack))
	}

	pos = 300
	ch.PopLoop(&pos) // counter reaches 1 -> pop, no jump
	if pos != 300 {
		t.Fatalf("final iteration jumped when it should have fallen through, pos=%#x", pos)
	}
	if len(ch.LoopStack) != 0 {
		t.Fatalf("loop frame not popped on final iteration, stackLen=%d", len(ch.LoopStack))
	}
}

func TestPopLoopEmptyStackNoOp(t *testing.T) {
	ch := NewChannel()
	pos := rom.Addr(42)
	ch.PopLoop(&pos)
	if pos != 42 {
		t.Fatalf("PopLoop on empty stack modified position to %#x", pos)
	}
}

func TestResetMixingLevels(t *testing.T) {
	ch := NewChannel()
	ch.Mixer[2].CurLevel = 500
	ch.MixMultiplier = 0
	ch.ResetMixingLevels()
	if ch.Mixer[2].CurLevel != 0 {
		t.Fatalf("mixer level not reset, got %d", ch.Mixer[2].CurLevel)
	}
	if ch.MixMultiplier != 0x7FFF {
		t.Fatalf("mix multiplier not restored to default, got %#x", ch.MixMultiplier)
	}
}

func TestAdvanceMixerSumsLevels(t *testing.T) {
	ch := NewChannel()
	ch.Mixer[0].CurLevel = 100
	ch.Mixer[1].CurLevel = -40
	sum := ch.AdvanceMixer()
	if sum != 60 {
		t.Fatalf("AdvanceMixer sum = %d, want 60", sum)
	}
}

func TestChannelResetPreservesIdentity(t *testing.T) {
	ch := NewChannel()
	ch.SourceChannel = 3
	ch.ChannelVolume = 0x40
	ch.TrackPtr = rom.Addr(123)
	ch.Reset()
	if ch.TrackPtr.IsNull() != true {
		t.Fatalf("track pointer not cleared on reset")
	}
	if ch.SourceChannel != 3 {
		t.Fatalf("source channel identity not preserved across reset, got %d", ch.SourceChannel)
	}
	if ch.ChannelVolume != 0x40 {
		t.Fatalf("channel volume not preserved across reset, got %#x", ch.ChannelVolume)
	}
}
