/*
NAME
  track.go

DESCRIPTION
  track.go defines the per-channel state: the
  track program cursor, loop stack, audio stream playback state,
  mixing control array, host event timer and the documented-dead
  mystery-op fade parameters. The track byte-code interpreter itself
  lives in the decoder package, which owns the full 8-channel array
  that opcodes like 0x05 (deferred link) and 0x07-0x0C (mixing level,
  addressed by TARGET channel) need to reach across.

AUTHOR
  Dialect authors, AusOcean DCS team.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package track implements the channel state machine that drives
// which audio streams play on which channels and how their mixing
// levels fade over time.
package track

import (
	"github.com/ausocean/dcs/codec/frame"
	"github.com/ausocean/dcs/internal/bitio"
	"github.com/ausocean/dcs/mixer"
	"github.com/ausocean/dcs/rom"
)

// MaxChannels is the number of independently-programmable mixing
// channels the sound board supports.
const MaxChannels = 8

// Cursor is a byte/word/pointer reading position into a ROM image,
// mirroring the reference decoder's ROMPointer: unlike rom.ROM's
// directly-addressed reads, a Cursor advances its own position as it
// reads, the way a track program counter does.
type Cursor struct {
	ROM *rom.ROM
	Pos rom.Addr
}

// IsNull reports whether the cursor points at the null address.
func (c Cursor) IsNull() bool { return c.Pos.IsNull() }

// GetU8 reads one byte and advances the cursor.
func (c *Cursor) GetU8() (byte, error) {
	b, err := c.ROM.Byte(c.Pos)
	if err != nil {
		return 0, err
	}
	c.Pos++
	return b, nil
}

// GetU16 reads a big-endian 16-bit value and advances the cursor.
func (c *Cursor) GetU16() (uint16, error) {
	w, err := c.ROM.Word(c.Pos)
	if err != nil {
		return 0, err
	}
	c.Pos += 2
	return w, nil
}

// GetU24 reads a 24-bit logical address and advances the cursor.
func (c *Cursor) GetU24() (rom.Addr, error) {
	a, err := c.ROM.Addr24(c.Pos)
	if err != nil {
		return 0, err
	}
	c.Pos += 3
	return a, nil
}

// Modify adjusts the cursor's position by delta bytes, used to "un-get"
// a count prefix that hasn't been reached yet.
func (c *Cursor) Modify(delta int) { c.Pos = rom.Addr(int64(c.Pos) + int64(delta)) }

// LoopFrame is one entry on a channel's loop stack, pushed by opcode
// 0x0E and consumed by 0x0F.
type LoopFrame struct {
	Counter uint16
	Pos     rom.Addr
}

// MysteryOp holds the never-exercised opcode 0x10-0x12 fade state: the
// 1994+ software implements set/increase/decrease variants structured
// just like the mixing level opcodes, but nothing downstream ever
// reads the result back out.
type MysteryOp struct {
	Current     uint16
	Target      uint16
	StepCounter uint16
	StepSize    float64
	// Command is written directly by the data-port protocol's 0x55BA-
	// 0x55C1 extended command, a second never-consumed field distinct from the
	// fade machinery above.
	Command uint16
}

// Set snaps the mystery op parameter directly to v, clearing any fade.
func (m *MysteryOp) Set(v uint16) {
	m.Current, m.Target, m.StepCounter, m.StepSize = v, v, 0, 0
}

// AudioStream is the playback state for the stream currently loaded
// into a channel.
type AudioStream struct {
	HeaderPtr    rom.Addr
	HeaderLength int
	StartPtr     rom.Addr
	Bits         *bitio.Reader
	Playing      bool
	Header       [16]byte
	State        frame.StreamState
	BandTypeBuf  [16]uint16
	FrameCounter uint16
	NumFrames    uint16
	LoopCounter  uint16
	// AtStart is true when Bits has not yet decoded any frame of the
	// current load, so the decoder must run InitStreamPlayback (copy
	// the header, zero the band-type state) before decompressing.
	AtStart bool
}

// Clear resets the stream to the not-playing state.
func (s *AudioStream) Clear() {
	*s = AudioStream{}
}

// HostEventTimer periodically writes a fixed byte to the data port
// while active, used to let track programs synchronize host-side
// actions to music playback.
type HostEventTimer struct {
	Data     byte
	Interval uint16
	Counter  uint16
}

// Set arms the timer with the given data byte and interval (in main
// loop iterations).
func (t *HostEventTimer) Set(data byte, interval uint16) {
	t.Data = data
	t.Interval = interval
	t.Counter = interval
}

// Clear disarms the timer.
func (t *HostEventTimer) Clear() { t.Interval, t.Counter = 0, 0 }

// Update decrements the countdown if the timer is active, resetting it
// and reporting true when it fires.
func (t *HostEventTimer) Update() bool {
	if t.Interval == 0 {
		return false
	}
	t.Counter--
	if t.Counter == 0 {
		t.Counter = t.Interval
		return true
	}
	return false
}

// Channel is one of the board's eight independently-programmable
// mixing channels.
type Channel struct {
	TrackPtr      rom.Addr
	TrackCounter  uint16
	NextTrackType byte
	NextTrackLink uint16
	Stream        AudioStream
	SourceChannel int
	// Mixer holds this channel's incoming mixing level from every
	// other channel (including itself), indexed by source channel
	// number: a flat array rather than recursive per-channel objects,
	// since each channel only ever needs to look up "what level is
	// channel N currently setting on me".
	Mixer          [MaxChannels]mixer.Control
	MaxMixOverride bool
	MixMultiplier  uint16
	HostTimer      HostEventTimer
	ChannelVolume  uint16
	MysteryOp      MysteryOp

	LoopStack []LoopFrame

	// Stop is the forced-stop flag: when set, the next main loop pass
	// tears down the channel's stream and track program before doing
	// anything else, per the reference decoder's MainLoop stop-flag
	// sweep. No decompressor sets it; frame corruption is not detected.
	Stop bool
}

// NewChannel returns a Channel in its power-on state.
func NewChannel() *Channel {
	return &Channel{
		SourceChannel: -1,
		ChannelVolume: 0xff,
		MixMultiplier: 0x7FFF,
		TrackPtr:      rom.NullAddr,
	}
}

// Reset clears every channel field back to the power-on state,
// including a fresh mixer array, except SourceChannel and
// ChannelVolume, which it keeps.
func (ch *Channel) Reset() {
	src := ch.SourceChannel
	vol := ch.ChannelVolume
	*ch = Channel{
		SourceChannel: src,
		ChannelVolume: vol,
		MixMultiplier: 0x7FFF,
		TrackPtr:      rom.NullAddr,
	}
}

// ResetMixingLevels clears every incoming mixing control on the
// channel and restores the default mixing multiplier, matching the
// reference decoder's ResetMixingLevels.
func (ch *Channel) ResetMixingLevels() {
	for i := range ch.Mixer {
		ch.Mixer[i].Reset()
	}
	ch.MixMultiplier = 0x7FFF
}

// PushLoop implements track opcode 0x0E: save the current cursor
// position and a repeat counter (0 means loop forever).
func (ch *Channel) PushLoop(counter byte, pos rom.Addr) {
	ch.LoopStack = append(ch.LoopStack, LoopFrame{Counter: uint16(counter), Pos: pos})
}

// PopLoop implements track opcode 0x0F: jump the cursor back to the
// most recent PushLoop point and decrement its counter, popping the
// frame once a finite loop's last iteration completes.
func (ch *Channel) PopLoop(pos *rom.Addr) {
	if len(ch.LoopStack) == 0 {
		return
	}
	top := &ch.LoopStack[len(ch.LoopStack)-1]
	switch {
	case top.Counter == 0:
		*pos = top.Pos
	case top.Counter == 1:
		ch.LoopStack = ch.LoopStack[:len(ch.LoopStack)-1]
	default:
		top.Counter--
		*pos = top.Pos
	}
}

// AdvanceMixer steps every incoming mixing control's fade by one tick
// and returns the plain (unclamped) sum of all current levels, the input
// UpdateMixingLevels needs to derive this channel's aggregate
// multiplier.
func (ch *Channel) AdvanceMixer() int32 {
	var sum int32
	for i := range ch.Mixer {
		ch.Mixer[i].Advance()
		sum += ch.Mixer[i].CurLevel
	}
	return sum
}
