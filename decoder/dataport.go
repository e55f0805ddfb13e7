/*
NAME
  dataport.go

DESCRIPTION
  dataport.go implements the data-port protocol state machine: a
  4-state byte assembler that recognizes 2-byte track commands, the
  4-byte "55 xx val ~val" extended command family
  (master volume, per-channel volume, and the unused mystery-op
  command table), and the DCS-95 version-query 2-byte replies. Bytes
  arrive one at a time via IRQ2; the timeout counter MainLoop ages
  every frame discards a partially-assembled command if too much time
  elapses between bytes.

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

// dataPortTimeoutMax is the main-loop-tick cap on the data-port
// timeout counter: roughly 100ms at one tick per 7.68ms
// frame, the maximum gap allowed between bytes of a multi-byte
// command.
const dataPortTimeoutMax = 13

// dataPortState is the byte-assembler's buffered state between IRQ2
// calls.
type dataPortState struct {
	nBytes  int
	word    uint16
	ext     uint16
	timeout int
}

// specialCommandTOTAN is the TOTAN-specific command code the
// data-port handler intercepts directly rather than passing to the
// track sequencer.
const specialCommandTOTAN = 0x03E7

// irq2 processes one byte arriving on the data port, advancing the
// 4-state assembler and emitting host replies or queued track
// commands as each sequence completes.
func (d *Decoder) irq2(data byte) {
	dp := &d.dataPort
	if dp.timeout >= dataPortTimeoutMax {
		dp.nBytes = 0
	}

	switch dp.nBytes {
	case 0:
		dp.word = uint16(data) << 8
		dp.nBytes = 1

	case 1:
		dp.word |= uint16(data)
		switch {
		case dp.word >= 0x55AA && dp.word <= 0x55B2, dp.word >= 0x55BA && dp.word <= 0x55C1:
			dp.ext = dp.word
			dp.nBytes = 2

		case dp.word > 0x55B2 && dp.word < 0x55BA:
			dp.nBytes = 0

		case dp.word == 0x55C2 || dp.word == 0x55C3:
			if dp.word == 0x55C2 {
				d.Host.ReceiveDataPort(byte(d.ReportedVersion >> 8))
			} else {
				d.Host.ReceiveDataPort(byte(d.ReportedVersion))
			}
			dp.nBytes = 0

		case dp.word&0x8000 != 0:
			dp.nBytes = 0

		case dp.word == specialCommandTOTAN && d.Game == GameTOTAN:
			d.Host.ReceiveDataPort(0x11)
			dp.nBytes = 0

		default:
			d.AddTrackCommand(dp.word)
			dp.nBytes = 0
		}

	case 2:
		dp.word = uint16(data)
		dp.nBytes = 3

	case 3:
		if dp.word == uint16(data^0xFF) {
			switch {
			case dp.ext == 0x55AA:
				d.SetMasterVolume(byte(dp.word))
			case dp.ext <= 0x55B2:
				d.SetChannelVolume(int(dp.ext-0x55AB), byte(dp.word))
			case dp.ext >= 0x55BA && dp.ext <= 0x55C1:
				ch := int(dp.ext - 0x55BA)
				if ch >= 0 && ch < MaxChannels {
					d.Channels[ch].MysteryOp.Target = 0
					d.Channels[ch].MysteryOp.Command = dp.word
				}
			}
		}
		dp.nBytes = 0
	}

	dp.timeout = 0
}
