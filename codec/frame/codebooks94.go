/*
NAME
  codebooks94.go

DESCRIPTION
  codebooks94.go holds the six fixed Huffman codebooks OS94+ uses to
  decode band samples whose band-type code is 1 through 6. Each codebook is a direct lookup table indexed by
  the next maxBitWidth bits of input (peeked, not yet consumed): the
  low byte of each entry is the decoded value (excess 2^(typeCode-1),
  with bit $80 set meaning "two zero samples"), and the high byte is
  the number of bits actually consumed.

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

// maxBitWidth94 gives the lookahead width (in bits) for each band
// type code 1..6.
var maxBitWidth94 = [7]int{0, 2, 3, 5, 7, 8, 9}

var codebook94_1 = [0x0004]uint16{
	0x0201, 0x0200, 0x0180, 0x0180,
}

var codebook94_2 = [0x0008]uint16{
	0x0201, 0x0201, 0x0300, 0x0302, 0x0203, 0x0203, 0x0280, 0x0280,
}

var codebook94_3 = [0x0020]uint16{
	0x0205, 0x0205, 0x0205, 0x0205, 0x0205, 0x0205, 0x0205, 0x0205,
	0x0203, 0x0203, 0x0203, 0x0203, 0x0203, 0x0203, 0x0203, 0x0203,
	0x0407, 0x0407, 0x0500, 0x0501, 0x0306, 0x0306, 0x0306, 0x0306,
	0x0304, 0x0304, 0x0304, 0x0304, 0x0402, 0x0402, 0x0480, 0x0480,
}

var codebook94_4 = [0x0080]uint16{
	0x030a, 0x030a, 0x030a, 0x030a, 0x030a, 0x030a, 0x030a, 0x030a,
	0x030a, 0x030a, 0x030a, 0x030a, 0x030a, 0x030a, 0x030a, 0x030a,
	0x0306, 0x0306, 0x0306, 0x0306, 0x0306, 0x0306, 0x0306, 0x0306,
	0x0306, 0x0306, 0x0306, 0x0306, 0x0306, 0x0306, 0x0306, 0x0306,
	0x0308, 0x0308, 0x0308, 0x0308, 0x0308, 0x0308, 0x0308, 0x0308,
	0x0308, 0x0308, 0x0308, 0x0308, 0x0308, 0x0308, 0x0308, 0x0308,
	0x040c, 0x040c, 0x040c, 0x040c, 0x040c, 0x040c, 0x040c, 0x040c,
	0x0503, 0x0503, 0x0503, 0x0503, 0x050d, 0x050d, 0x050d, 0x050d,
	0x040b, 0x040b, 0x040b, 0x040b, 0x040b, 0x040b, 0x040b, 0x040b,
	0x0405, 0x0405, 0x0405, 0x0405, 0x0405, 0x0405, 0x0405, 0x0405,
	0x060f, 0x060f, 0x0602, 0x0602, 0x0580, 0x0580, 0x0580, 0x0580,
	0x060e, 0x060e, 0x0700, 0x0701, 0x0504, 0x0504, 0x0504, 0x0504,
	0x0309, 0x0309, 0x0309, 0x0309, 0x0309, 0x0309, 0x0309, 0x0309,
	0x0309, 0x0309, 0x0309, 0x0309, 0x0309, 0x0309, 0x0309, 0x0309,
	0x0307, 0x0307, 0x0307, 0x0307, 0x0307, 0x0307, 0x0307, 0x0307,
	0x0307, 0x0307, 0x0307, 0x0307, 0x0307, 0x0307, 0x0307, 0x0307,
}

var codebook94_5 = [0x0100]uint16{
	0x0311, 0x0311, 0x0311, 0x0311, 0x0311, 0x0311, 0x0311, 0x0311,
	0x0311, 0x0311, 0x0311, 0x0311, 0x0311, 0x0311, 0x0311, 0x0311,
	0x0311, 0x0311, 0x0311, 0x0311, 0x0311, 0x0311, 0x0311, 0x0311,
	0x0311, 0x0311, 0x0311, 0x0311, 0x0311, 0x0311, 0x0311, 0x0311,
	0x030f, 0x030f, 0x030f, 0x030f, 0x030f, 0x030f, 0x030f, 0x030f,
	0x030f, 0x030f, 0x030f, 0x030f, 0x030f, 0x030f, 0x030f, 0x030f,
	0x030f, 0x030f, 0x030f, 0x030f, 0x030f, 0x030f, 0x030f, 0x030f,
	0x030f, 0x030f, 0x030f, 0x030f, 0x030f, 0x030f, 0x030f, 0x030f,
	0x040c, 0x040c, 0x040c, 0x040c, 0x040c, 0x040c, 0x040c, 0x040c,
	0x040c, 0x040c, 0x040c, 0x040c, 0x040c, 0x040c, 0x040c, 0x040c,
	0x0518, 0x0518, 0x0518, 0x0518, 0x0518, 0x0518, 0x0518, 0x0518,
	0x071d, 0x071d, 0x0800, 0x0801, 0x0606, 0x0606, 0x0606, 0x0606,
	0x0516, 0x0516, 0x0516, 0x0516, 0x0516, 0x0516, 0x0516, 0x0516,
	0x061a, 0x061a, 0x061a, 0x061a, 0x0680, 0x0680, 0x0680, 0x0680,
	0x0413, 0x0413, 0x0413, 0x0413, 0x0413, 0x0413, 0x0413, 0x0413,
	0x0413, 0x0413, 0x0413, 0x0413, 0x0413, 0x0413, 0x0413, 0x0413,
	0x040d, 0x040d, 0x040d, 0x040d, 0x040d, 0x040d, 0x040d, 0x040d,
	0x040d, 0x040d, 0x040d, 0x040d, 0x040d, 0x040d, 0x040d, 0x040d,
	0x050a, 0x050a, 0x050a, 0x050a, 0x050a, 0x050a, 0x050a, 0x050a,
	0x0704, 0x0704, 0x071c, 0x071c, 0x0608, 0x0608, 0x0608, 0x0608,
	0x0515, 0x0515, 0x0515, 0x0515, 0x0515, 0x0515, 0x0515, 0x0515,
	0x0607, 0x0607, 0x0607, 0x0607, 0x0619, 0x0619, 0x0619, 0x0619,
	0x0410, 0x0410, 0x0410, 0x0410, 0x0410, 0x0410, 0x0410, 0x0410,
	0x0410, 0x0410, 0x0410, 0x0410, 0x0410, 0x0410, 0x0410, 0x0410,
	0x0412, 0x0412, 0x0412, 0x0412, 0x0412, 0x0412, 0x0412, 0x0412,
	0x0412, 0x0412, 0x0412, 0x0412, 0x0412, 0x0412, 0x0412, 0x0412,
	0x040e, 0x040e, 0x040e, 0x040e, 0x040e, 0x040e, 0x040e, 0x040e,
	0x040e, 0x040e, 0x040e, 0x040e, 0x040e, 0x040e, 0x040e, 0x040e,
	0x050b, 0x050b, 0x050b, 0x050b, 0x050b, 0x050b, 0x050b, 0x050b,
	0x081f, 0x0802, 0x0705, 0x0705, 0x071b, 0x071b, 0x081e, 0x0803,
	0x0617, 0x0617, 0x0617, 0x0617, 0x0609, 0x0609, 0x0609, 0x0609,
	0x0514, 0x0514, 0x0514, 0x0514, 0x0514, 0x0514, 0x0514, 0x0514,
}

var codebook94_6 = [0x0200]uint16{
	0x041d, 0x041d, 0x041d, 0x041d, 0x041d, 0x041d, 0x041d, 0x041d,
	0x041d, 0x041d, 0x041d, 0x041d, 0x041d, 0x041d, 0x041d, 0x041d,
	0x041d, 0x041d, 0x041d, 0x041d, 0x041d, 0x041d, 0x041d, 0x041d,
	0x041d, 0x041d, 0x041d, 0x041d, 0x041d, 0x041d, 0x041d, 0x041d,
	0x083a, 0x083a, 0x0900, 0x0901, 0x070c, 0x070c, 0x070c, 0x070c,
	0x0614, 0x0614, 0x0614, 0x0614, 0x0614, 0x0614, 0x0614, 0x0614,
	0x0519, 0x0519, 0x0519, 0x0519, 0x0519, 0x0519, 0x0519, 0x0519,
	0x0519, 0x0519, 0x0519, 0x0519, 0x0519, 0x0519, 0x0519, 0x0519,
	0x0527, 0x0527, 0x0527, 0x0527, 0x0527, 0x0527, 0x0527, 0x0527,
	0x0527, 0x0527, 0x0527, 0x0527, 0x0527, 0x0527, 0x0527, 0x0527,
	0x0734, 0x0734, 0x0734, 0x0734, 0x0807, 0x0807, 0x0839, 0x0839,
	0x062b, 0x062b, 0x062b, 0x062b, 0x062b, 0x062b, 0x062b, 0x062b,
	0x0420, 0x0420, 0x0420, 0x0420, 0x0420, 0x0420, 0x0420, 0x0420,
	0x0420, 0x0420, 0x0420, 0x0420, 0x0420, 0x0420, 0x0420, 0x0420,
	0x0420, 0x0420, 0x0420, 0x0420, 0x0420, 0x0420, 0x0420, 0x0420,
	0x0420, 0x0420, 0x0420, 0x0420, 0x0420, 0x0420, 0x0420, 0x0420,
	0x0422, 0x0422, 0x0422, 0x0422, 0x0422, 0x0422, 0x0422, 0x0422,
	0x0422, 0x0422, 0x0422, 0x0422, 0x0422, 0x0422, 0x0422, 0x0422,
	0x0422, 0x0422, 0x0422, 0x0422, 0x0422, 0x0422, 0x0422, 0x0422,
	0x0422, 0x0422, 0x0422, 0x0422, 0x0422, 0x0422, 0x0422, 0x0422,
	0x041e, 0x041e, 0x041e, 0x041e, 0x041e, 0x041e, 0x041e, 0x041e,
	0x041e, 0x041e, 0x041e, 0x041e, 0x041e, 0x041e, 0x041e, 0x041e,
	0x041e, 0x041e, 0x041e, 0x041e, 0x041e, 0x041e, 0x041e, 0x041e,
	0x041e, 0x041e, 0x041e, 0x041e, 0x041e, 0x041e, 0x041e, 0x041e,
	0x0615, 0x0615, 0x0615, 0x0615, 0x0615, 0x0615, 0x0615, 0x0615,
	0x070d, 0x070d, 0x070d, 0x070d, 0x0733, 0x0733, 0x0733, 0x0733,
	0x0526, 0x0526, 0x0526, 0x0526, 0x0526, 0x0526, 0x0526, 0x0526,
	0x0526, 0x0526, 0x0526, 0x0526, 0x0526, 0x0526, 0x0526, 0x0526,
	0x051a, 0x051a, 0x051a, 0x051a, 0x051a, 0x051a, 0x051a, 0x051a,
	0x051a, 0x051a, 0x051a, 0x051a, 0x051a, 0x051a, 0x051a, 0x051a,
	0x093f, 0x093e, 0x0808, 0x0808, 0x0710, 0x0710, 0x0710, 0x0710,
	0x0838, 0x0838, 0x0902, 0x0903, 0x070e, 0x070e, 0x070e, 0x070e,
	0x0421, 0x0421, 0x0421, 0x0421, 0x0421, 0x0421, 0x0421, 0x0421,
	0x0421, 0x0421, 0x0421, 0x0421, 0x0421, 0x0421, 0x0421, 0x0421,
	0x0421, 0x0421, 0x0421, 0x0421, 0x0421, 0x0421, 0x0421, 0x0421,
	0x0421, 0x0421, 0x0421, 0x0421, 0x0421, 0x0421, 0x0421, 0x0421,
	0x041f, 0x041f, 0x041f, 0x041f, 0x041f, 0x041f, 0x041f, 0x041f,
	0x041f, 0x041f, 0x041f, 0x041f, 0x041f, 0x041f, 0x041f, 0x041f,
	0x041f, 0x041f, 0x041f, 0x041f, 0x041f, 0x041f, 0x041f, 0x041f,
	0x041f, 0x041f, 0x041f, 0x041f, 0x041f, 0x041f, 0x041f, 0x041f,
	0x062a, 0x062a, 0x062a, 0x062a, 0x062a, 0x062a, 0x062a, 0x062a,
	0x0616, 0x0616, 0x0616, 0x0616, 0x0616, 0x0616, 0x0616, 0x0616,
	0x0809, 0x0809, 0x0837, 0x0837, 0x072f, 0x072f, 0x072f, 0x072f,
	0x0732, 0x0732, 0x0732, 0x0732, 0x0711, 0x0711, 0x0711, 0x0711,
	0x051b, 0x051b, 0x051b, 0x051b, 0x051b, 0x051b, 0x051b, 0x051b,
	0x051b, 0x051b, 0x051b, 0x051b, 0x051b, 0x051b, 0x051b, 0x051b,
	0x0525, 0x0525, 0x0525, 0x0525, 0x0525, 0x0525, 0x0525, 0x0525,
	0x0525, 0x0525, 0x0525, 0x0525, 0x0525, 0x0525, 0x0525, 0x0525,
	0x093d, 0x0904, 0x080a, 0x080a, 0x070f, 0x070f, 0x070f, 0x070f,
	0x0617, 0x0617, 0x0617, 0x0617, 0x0617, 0x0617, 0x0617, 0x0617,
	0x0629, 0x0629, 0x0629, 0x0629, 0x0629, 0x0629, 0x0629, 0x0629,
	0x072e, 0x072e, 0x072e, 0x072e, 0x0731, 0x0731, 0x0731, 0x0731,
	0x0524, 0x0524, 0x0524, 0x0524, 0x0524, 0x0524, 0x0524, 0x0524,
	0x0524, 0x0524, 0x0524, 0x0524, 0x0524, 0x0524, 0x0524, 0x0524,
	0x051c, 0x051c, 0x051c, 0x051c, 0x051c, 0x051c, 0x051c, 0x051c,
	0x051c, 0x051c, 0x051c, 0x051c, 0x051c, 0x051c, 0x051c, 0x051c,
	0x0712, 0x0712, 0x0712, 0x0712, 0x0836, 0x0836, 0x093c, 0x093b,
	0x072d, 0x072d, 0x072d, 0x072d, 0x080b, 0x080b, 0x0905, 0x0906,
	0x0628, 0x0628, 0x0628, 0x0628, 0x0628, 0x0628, 0x0628, 0x0628,
	0x0713, 0x0713, 0x0713, 0x0713, 0x0730, 0x0730, 0x0730, 0x0730,
	0x0618, 0x0618, 0x0618, 0x0618, 0x0618, 0x0618, 0x0618, 0x0618,
	0x0835, 0x0835, 0x0880, 0x0880, 0x072c, 0x072c, 0x072c, 0x072c,
	0x0523, 0x0523, 0x0523, 0x0523, 0x0523, 0x0523, 0x0523, 0x0523,
	0x0523, 0x0523, 0x0523, 0x0523, 0x0523, 0x0523, 0x0523, 0x0523,
}

// sampleCodebook94 returns the fixed codebook for a band type code
// 1..6, along with its lookahead width in bits.
func sampleCodebook94(typeCode int) ([]uint16, int) {
	switch typeCode {
	case 1:
		return codebook94_1[:], maxBitWidth94[1]
	case 2:
		return codebook94_2[:], maxBitWidth94[2]
	case 3:
		return codebook94_3[:], maxBitWidth94[3]
	case 4:
		return codebook94_4[:], maxBitWidth94[4]
	case 5:
		return codebook94_5[:], maxBitWidth94[5]
	case 6:
		return codebook94_6[:], maxBitWidth94[6]
	default:
		return nil, 0
	}
}
