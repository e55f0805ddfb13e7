/*
NAME
  interp.go

DESCRIPTION
  interp.go implements the track byte-code interpreter: execTrack's
  opcode switch (0x00-0x12), loadTrack, and the mixing-level control
  opcodes 0x07-0x0C's shared helper mixingLevelOp. A track program is
  a sequence of (count-prefix,
  opcode, operands) triples read directly from ROM through a
  track.Cursor; the count prefix pauses execution until the channel's
  TrackCounter (incremented once per main loop pass) reaches it.

AUTHOR
  Dialect authors, AusOcean DCS team.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package decoder

import (
	"github.com/pkg/errors"

	"github.com/ausocean/dcs/format"
	"github.com/ausocean/dcs/rom"
	"github.com/ausocean/dcs/track"
)

// loadTrack implements LoadTrack: point channel ch at a new
// byte-code program, clearing its stream and per-track counters, and
// clearing its incoming mixing contributions from every source.
func (d *Decoder) loadTrack(ch int, trackPtr rom.Addr) {
	if ch < 0 || ch >= MaxChannels {
		return
	}
	c := d.Channels[ch]
	c.TrackPtr = trackPtr
	c.Stream.Bits = nil
	c.TrackCounter = 0
	c.HostTimer.Clear()
	c.LoopStack = c.LoopStack[:0]
	d.clearChannelMixingContribution(ch)
}

// execTrack runs channel ch's track byte-code program until it either
// terminates, pauses on an unmet count prefix, or hits a fatal opcode.
func (d *Decoder) execTrack(chIdx int) error {
	c := d.Channels[chIdx]
	if c.TrackPtr.IsNull() {
		return nil
	}
	cur := track.Cursor{ROM: d.ROM, Pos: c.TrackPtr}

	for {
		countPrefix, err := cur.GetU16()
		if err != nil {
			return err
		}
		if countPrefix == 0xFFFF || c.TrackCounter != countPrefix {
			cur.Modify(-2)
			c.TrackPtr = cur.Pos
			return nil
		}
		c.TrackCounter = 0

		opcode, err := cur.GetU8()
		if err != nil {
			return err
		}

		switch opcode {
		case 0x00:
			// Stop: halt the track and its audio stream.
			c.TrackPtr = rom.NullAddr
			c.Stream.Bits = nil
			c.LoopStack = c.LoopStack[:0]
			c.HostTimer.Clear()
			d.clearChannelMixingContribution(chIdx)
			return nil

		case 0x01:
			// Load audio stream into a (possibly different) channel.
			streamCh, err := cur.GetU8()
			if err != nil {
				return err
			}
			if streamCh == 5 {
				d.Channels[5].MaxMixOverride = false
			}
			ptr, err := cur.GetU24()
			if err != nil {
				return err
			}
			loopCounter, err := cur.GetU8()
			if err != nil {
				return err
			}
			if err := d.loadAudioStream(int(streamCh), chIdx, uint16(loopCounter), ptr); err != nil {
				return err
			}

		case 0x02:
			// Stop playback in a specified channel.
			targetCh, err := cur.GetU8()
			if err != nil {
				return err
			}
			if int(targetCh) >= MaxChannels {
				return errors.Errorf("decoder: track opcode 0x02 targets channel %d: resetting", targetCh)
			}
			target := d.Channels[targetCh]
			if target.Stream.Bits != nil {
				target.Stream.Bits = nil
				d.clearChannelMixingContribution(int(targetCh))
			}
			target.TrackPtr = rom.NullAddr
			target.HostTimer.Clear()
			if c.TrackPtr.IsNull() {
				return nil
			}

		case 0x03:
			// Queue a command as if it arrived on the data port.
			cmd, err := cur.GetU16()
			if err != nil {
				return err
			}
			d.AddTrackCommand(cmd)

		case 0x04:
			if err := d.execOpcode04(chIdx, &cur); err != nil {
				return err
			}

		case 0x05:
			if err := d.execOpcode05(chIdx, &cur); err != nil {
				return err
			}

		case 0x06:
			// Set variable: a no-op on 1993 firmware.
			if d.Dialect != format.Os93a && d.Dialect != format.Os93b {
				idx, err := cur.GetU8()
				if err != nil {
					return err
				}
				val, err := cur.GetU8()
				if err != nil {
					return err
				}
				d.Variables[idx] = val
			}

		case 0x07, 0x08, 0x09:
			if err := d.mixingLevelOp(chIdx, &cur, int(opcode-0x07), false); err != nil {
				return err
			}

		case 0x0A, 0x0B, 0x0C:
			if err := d.mixingLevelOp(chIdx, &cur, int(opcode-0x0A), true); err != nil {
				return err
			}

		case 0x0D:
			// No-op.

		case 0x0E:
			loopCounter, err := cur.GetU8()
			if err != nil {
				return err
			}
			c.PushLoop(loopCounter, cur.Pos)

		case 0x0F:
			c.PopLoop(&cur.Pos)

		case 0x10:
			ch, err := cur.GetU8()
			if err != nil {
				return err
			}
			val, err := cur.GetU8()
			if err != nil {
				return err
			}
			if int(ch) < MaxChannels {
				d.Channels[ch].MysteryOp.Set(uint16(val))
			}

		case 0x11, 0x12:
			if err := d.execMysteryFade(opcode, &cur); err != nil {
				return err
			}

		default:
			return errors.Errorf("decoder: invalid track opcode %#x: resetting", opcode)
		}
	}
}

// execOpcode04 implements opcode 0x04's two OS-version-dependent
// meanings: OS93a's host-event-timer setup, versus every later
// dialect's plain data-port write (with the 1.05 firmware's 0x69/0x6A
// channel-5 max-mix-level quirk).
func (d *Decoder) execOpcode04(chIdx int, cur *track.Cursor) error {
	c := d.Channels[chIdx]
	if d.Dialect == format.Os93a {
		cmdByte, err := cur.GetU8()
		if err != nil {
			return err
		}
		counter, err := cur.GetU16()
		if err != nil {
			return err
		}
		if cmdByte == 0 {
			c.HostTimer.Clear()
			return nil
		}
		d.Host.ReceiveDataPort(cmdByte)
		if counter != 0 {
			c.HostTimer.Set(cmdByte, counter)
		} else {
			c.HostTimer.Clear()
		}
		return nil
	}

	b, err := cur.GetU8()
	if err != nil {
		return err
	}
	d.Host.ReceiveDataPort(b)
	if d.FirmwareVersion == 0x0105 {
		switch b {
		case 0x69:
			d.Channels[5].MaxMixOverride = true
		case 0x6A:
			d.Channels[5].MaxMixOverride = false
		}
	}
	return nil
}

// execOpcode05 implements opcode 0x05's deferred-track-link trigger:
// it consumes the target channel's pending type-2/3 track link (set
// earlier by drainCommandQueue) and turns it into a queued command.
func (d *Decoder) execOpcode05(chIdx int, cur *track.Cursor) error {
	targetCh, err := cur.GetU8()
	if err != nil {
		return err
	}
	if int(targetCh) >= MaxChannels {
		return errors.Errorf("decoder: track opcode 0x05 targets channel %d: resetting", targetCh)
	}
	target := d.Channels[targetCh]
	trackType := target.NextTrackType
	if trackType == 0 {
		return nil
	}
	target.NextTrackType = 0

	switch trackType {
	case rom.TrackTypeDeferred:
		d.AddTrackCommand(target.NextTrackLink)
	case rom.TrackTypeIndirect:
		lo := byte(target.NextTrackLink & 0x00FF)
		hi := byte((target.NextTrackLink >> 8) & 0x00FF)
		variableVal := d.Variables[hi]
		if d.Catalog == nil {
			return errors.New("decoder: type-3 deferred link with no catalog loaded")
		}
		// The DI table index has no stored entry count (the encoder
		// sizes it to the highest table number actually referenced,
		// table layout); lo is trusted the same way the reference
		// decoder trusts it, with no bounds check beyond the chip
		// image's own.
		tablePtr, err := d.ROM.Addr24(d.Catalog.DITableIndexPtr + rom.Addr(lo)*3)
		if err != nil {
			return err
		}
		table, err := rom.ReadDITable(d.ROM, tablePtr)
		if err != nil {
			return err
		}
		cmd, err := table.Lookup(variableVal)
		if err != nil {
			return err
		}
		d.AddTrackCommand(cmd)
	}
	return nil
}

// execMysteryFade implements opcodes 0x11/0x12, the never-exercised
// increase/decrease variants of the mystery op; no downstream code
// reads the result, so this exists only to keep the track program's
// cursor position correct for the opcodes that follow it in any track
// that happens to contain one.
func (d *Decoder) execMysteryFade(opcode byte, cur *track.Cursor) error {
	ch, err := cur.GetU8()
	if err != nil {
		return err
	}
	deltaByte, err := cur.GetU8()
	if err != nil {
		return err
	}
	stepCounter, err := cur.GetU16()
	if err != nil {
		return err
	}
	if ch >= 6 {
		return nil
	}
	delta := int(deltaByte)
	if opcode == 0x12 {
		delta = -delta
	}
	params := &d.Channels[ch].MysteryOp
	newVal := int(params.Target) + delta
	if newVal < 0 {
		newVal = 0
	} else if newVal > 0xFF {
		newVal = 0xFF
	}
	params.Target = uint16(newVal)
	if params.Current == params.Target || stepCounter == 0 {
		params.Set(params.Current)
	} else {
		params.StepCounter = stepCounter
		params.StepSize = float64(delta) / float64(stepCounter)
	}
	return nil
}

// mixingLevelOp implements track opcodes 0x07-0x0C: an absolute,
// increase, or decrease change to the mixing level curChannel
// contributes to a target channel, either immediate or ramped over a
// fade.
func (d *Decoder) mixingLevelOp(curChannel int, cur *track.Cursor, mode int, fade bool) error {
	targetCh, err := cur.GetU8()
	if err != nil {
		return err
	}
	if int(targetCh) >= MaxChannels {
		return errors.Errorf("decoder: mixing level op targets channel %d: resetting", targetCh)
	}
	paramByte, err := cur.GetU8()
	if err != nil {
		return err
	}
	param := int32(int8(paramByte)) << 6

	var steps uint16
	if fade {
		s, err := cur.GetU16()
		if err != nil {
			return err
		}
		steps = s
	}

	d.Channels[targetCh].Mixer[curChannel].SetLevel(mode, param, steps)
	return nil
}

// loadAudioStream implements the reference decoder's three-argument
// LoadAudioStream: it loads a stream's header/frame-count state into
// streamCh, seeds its loop counter, and transfers incoming-mixer
// ownership from any previous controlling source channel to
// sourceCh.
func (d *Decoder) loadAudioStream(streamCh, sourceCh int, loopCounter uint16, ptr rom.Addr) error {
	if streamCh < 0 || streamCh >= MaxChannels {
		return errors.Errorf("decoder: load audio stream targets channel %d: resetting", streamCh)
	}
	c := d.Channels[streamCh]

	nFrames, err := d.ROM.Word(ptr)
	if err != nil {
		return err
	}
	headerPtr := ptr + 2
	headerLen := 16
	first, err := d.ROM.Byte(headerPtr)
	if err != nil {
		return err
	}
	if d.Dialect == format.Os93a && first&0x80 != 0 {
		headerLen = 1
	}
	streamStart := headerPtr + rom.Addr(headerLen)

	str := &c.Stream
	str.NumFrames = nFrames
	str.FrameCounter = nFrames
	str.HeaderPtr = headerPtr
	str.HeaderLength = headerLen
	str.StartPtr = streamStart
	str.AtStart = true

	if nFrames == 0 {
		str.Bits = nil
		return nil
	}

	str.Bits = newBitsReader(d.ROM, streamStart)
	str.LoopCounter = loopCounter

	oldSource := c.SourceChannel
	if oldSource >= 0 && oldSource != sourceCh {
		c.Mixer[oldSource].Reset()
	}
	c.SourceChannel = sourceCh
	return nil
}
