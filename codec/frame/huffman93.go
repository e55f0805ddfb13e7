/*
NAME
  huffman93.go

DESCRIPTION
  huffman93.go decodes OS93 Type-1 streams' differential band-type
  code. Unlike the OS94+ tree
  (huffman94.go), this tree's non-terminal nodes pack both children's
  indices into one 16-bit value (low byte for the '0' branch, high
  byte for the '1' branch), and its terminal values use two different
  excess conventions depending on their magnitude.

  Values below $1E are excess $0F. Values at or above $1E are excess
  $2E, and decoding one of these also flips the running band
  sub-type between 0 and 1 -- a documented quirk in the original
  firmware that collapses sub-types 1 and 2 onto identical behaviour.
  It is preserved here rather than corrected.

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

// headerHuffTree93 is the fixed binary tree for OS93's Type-1
// differential band-type header. Non-terminal nodes pack the '0'
// child index in the low byte and the '1' child index in the high
// byte; terminal nodes are marked with bit $8000 and carry their
// value in the low 6 bits.
var headerHuffTree93 = [111]uint16{
	0x7a01, 0x0302, 0x800e, 0x7904, 0x7605, 0x0706, 0x802e, 0x0908,
	0x802d, 0x730a, 0x700b, 0x0d0c, 0x8013, 0x6d0e, 0x120f, 0x1110,
	0x802b, 0x800b, 0x1413, 0x8015, 0x2a15, 0x2916, 0x1817, 0x8017,
	0x2819, 0x211a, 0x1e1b, 0x1d1c, 0x8037, 0x8026, 0x201f, 0x8008,
	0x8019, 0x2322, 0x8009, 0x2524, 0x801d, 0x2726, 0x8006, 0x801c,
	0x800a, 0x8031, 0x6c2b, 0x392c, 0x382d, 0x2f2e, 0x8018, 0x3730,
	0x3431, 0x3332, 0x8027, 0x8036, 0x3635, 0x8004, 0x8025, 0x8034,
	0x802a, 0x6b3a, 0x6a3b, 0x633c, 0x403d, 0x3f3e, 0x801a, 0x8038,
	0x6241, 0x6142, 0x5c43, 0x5944, 0x5445, 0x4946, 0x4847, 0x8000,
	0x8001, 0x534a, 0x524b, 0x4d4c, 0x8024, 0x4f4e, 0x8021, 0x5150,
	0x803a, 0x803b, 0x8023, 0x8020, 0x5855, 0x5756, 0x803c, 0x803d,
	0x8002, 0x5b5a, 0x8022, 0x8003, 0x605d, 0x5f5e, 0x801f, 0x801e,
	0x8039, 0x801b, 0x8007, 0x6764, 0x6665, 0x8035, 0x8029, 0x6968,
	0x8028, 0x8005, 0x8033, 0x8032, 0x8016, 0x6f6e, 0x8030, 0x8014,
	0x7271, 0x802c, 0x800c, 0x7574, 0x802f, 0x8012, 0x7877, 0x800d,
	0x8011, 0x8010, 0x800f,
}

// readHuff93 decodes the next differential band-type-code delta from
// r and returns it. bandSubType is flipped between 0 and 1 whenever
// the decoded terminal is excess-$2E, matching the original firmware's
// band-subtype-inversion bug.
func readHuff93(r *bitio.Reader, bandSubType *int) int {
	index := 0
	ele := headerHuffTree93[0]
	for ele&0x8000 == 0 {
		if r.Get(1) != 0 {
			index = int(ele >> 8)
		} else {
			index = int(ele & 0xFF)
		}
		ele = headerHuffTree93[index]
	}
	val := int(ele & 0x3F)
	if val < 0x1E {
		val -= 0x0F
	} else {
		val -= 0x2E
		if *bandSubType != 0 {
			*bandSubType = 0
		} else {
			*bandSubType = 1
		}
	}
	return val
}
