/*
NAME
  host.go

DESCRIPTION
  host.go defines the Host interface a caller implements to receive
  bytes the decoder emits toward the pinball machine's WPC controller: track opcode 0x04 (data port write on
  non-OS93a firmware), opcode 0x04's OS93a host-event-timer variant,
  a channel's HostEventTimer firing, and the version-query/special
  command responses the data-port protocol state machine in
  dataport.go sends back.

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

// Host is implemented by the decoder's caller to receive bytes the
// track interpreter or data-port state machine sends back toward the
// WPC host. A Host that only plays back
// streams and never talks to real pinball hardware may implement this
// with a no-op body.
type Host interface {
	ReceiveDataPort(b byte)
}

// DiscardHost implements Host by dropping every byte, for standalone
// stream playback that never needs the data-port channel.
type DiscardHost struct{}

func (DiscardHost) ReceiveDataPort(byte) {}
