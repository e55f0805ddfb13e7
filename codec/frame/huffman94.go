/*
NAME
  huffman94.go

DESCRIPTION
  huffman94.go decodes the differential band-type-code frame header
  used by every OS94+ stream. The header is
  itself a binary Huffman tree: 63 packed nodes, where a '0' input bit
  advances to the next array element and a '1' bit jumps by the
  offset stored in the current element; terminal nodes carry an
  excess-$2E delta in their low byte.

AUTHOR
  Dialect authors, AusOcean DCS team.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package frame

import "github.com/ausocean/dcs/internal/bitio"

// headerHuffTree94 is the fixed binary tree used to decode each
// frame's band-type-code deltas. A non-terminal node's value is the
// offset to add to the current index on a '1' bit (a '0' bit simply
// advances to the next element); a terminal node has bit $8000 set
// and carries its excess-$2E value in the low byte.
var headerHuffTree94 = [63]uint16{
	0x003c, 0x0002, 0x802d, 0x0038, 0x0002, 0x8030, 0x0034, 0x0032,
	0x0030, 0x002e, 0x002c, 0x0002, 0x802a, 0x0028, 0x0026, 0x0024,
	0x0022, 0x0020, 0x001e, 0x001a, 0x0012, 0x0008, 0x0006, 0x0004,
	0x0002, 0x8038, 0x8023, 0x8025, 0x803a, 0x0008, 0x0006, 0x0004,
	0x0002, 0x8024, 0x8020, 0x8022, 0x8026, 0x801f, 0x0006, 0x0002,
	0x801e, 0x0002, 0x803c, 0x8021, 0x8027, 0x0002, 0x803b, 0x8039,
	0x8028, 0x8037, 0x8029, 0x8036, 0x8035, 0x8034, 0x8033, 0x8032,
	0x802b, 0x8031, 0x802c, 0x802f, 0x802e,
}

// decodeBandTypeDelta94 walks headerHuffTree94 and returns the
// decoded excess-$2E delta for one band's type code.
func decodeBandTypeDelta94(r *bitio.Reader) int {
	idx := 0
	for {
		node := headerHuffTree94[idx]
		if node&0x8000 != 0 {
			return int(node&0xFF) - 0x2E
		}
		if r.Get(1) != 0 {
			idx += int(node)
		} else {
			idx++
		}
	}
}
