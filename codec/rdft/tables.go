/*
NAME
  tables.go

DESCRIPTION
  tables.go holds the fixed constant tables shared by both inverse
  transform algorithms: the 256-point IFFT's twiddle
  factors, the bit-reversal permutation used to read the IFFT's output
  in time order, and the 16-tap overlap-add window applied across
  frame boundaries.

AUTHOR
  Dialect authors, AusOcean DCS team.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package rdft implements the inverse real-valued discrete Fourier
// transform that turns a frame of decompressed frequency-domain
// samples into PCM output, in both the 1993 and 1994+
// algorithm variants.
package rdft

// ifftCoefficients holds 128 complex twiddle factors in 1.15 format:
// entries 0..127 are the sine components and 128..255 the cosine
// components, both accessed through the bitRev9 permutation by the
// pre/post-processing steps and directly (by partition index) by the
// main Cooley-Tukey loop.
var ifftCoefficients = [256]uint16{
	0x0000, 0x8000, 0xa57e, 0xa57e, 0xcf04, 0x89be, 0x89be, 0xcf04,
	0xe707, 0x8276, 0x9592, 0xb8e3, 0xb8e3, 0x9592, 0x8276, 0xe707,
	0xf374, 0x809e, 0x9d0e, 0xaecc, 0xc3a9, 0x8f1d, 0x8583, 0xdad8,
	0xdad8, 0x8583, 0x8f1d, 0xc3a9, 0xaecc, 0x9d0e, 0x809e, 0xf374,
	0xf9b8, 0x8027, 0xa129, 0xaa0a, 0xc946, 0x8c4a, 0x877b, 0xd4e1,
	0xe0e6, 0x83d6, 0x9236, 0xbe32, 0xb3c0, 0x9930, 0x8163, 0xed38,
	0xed38, 0x8163, 0x9930, 0xb3c0, 0xbe32, 0x9236, 0x83d6, 0xe0e6,
	0xd4e1, 0x877b, 0x8c4a, 0xc946, 0xaa0a, 0xa129, 0x8027, 0xf9b8,
	0xfcdc, 0x800a, 0xa34c, 0xa7bd, 0xcc21, 0x8afb, 0x8894, 0xd1ef,
	0xe3f4, 0x831c, 0x93dc, 0xbb85, 0xb64c, 0x9759, 0x81e2, 0xea1e,
	0xf055, 0x80f6, 0x9b17, 0xb140, 0xc0e9, 0x90a1, 0x84a3, 0xdddc,
	0xd7d9, 0x8676, 0x8dab, 0xc673, 0xac65, 0x9f14, 0x8059, 0xf695,
	0xf695, 0x8059, 0x9f14, 0xac65, 0xc673, 0x8dab, 0x8676, 0xd7d9,
	0xdddc, 0x84a3, 0x90a1, 0xc0e9, 0xb140, 0x9b17, 0x80f6, 0xf055,
	0xea1e, 0x81e2, 0x9759, 0xb64c, 0xbb85, 0x93dc, 0x831c, 0xe3f4,
	0xd1ef, 0x8894, 0x8afb, 0xcc21, 0xa7bd, 0xa34c, 0x800a, 0xfcdc,
	0x8000, 0x0000, 0xa57e, 0x5a82, 0x89be, 0x30fc, 0xcf04, 0x7642,
	0x8276, 0x18f9, 0xb8e3, 0x6a6e, 0x9592, 0x471d, 0xe707, 0x7d8a,
	0x809e, 0x0c8c, 0xaecc, 0x62f2, 0x8f1d, 0x3c57, 0xdad8, 0x7a7d,
	0x8583, 0x2528, 0xc3a9, 0x70e3, 0x9d0e, 0x5134, 0xf374, 0x7f62,
	0x8027, 0x0648, 0xaa0a, 0x5ed7, 0x8c4a, 0x36ba, 0xd4e1, 0x7885,
	0x83d6, 0x1f1a, 0xbe32, 0x6dca, 0x9930, 0x4c40, 0xed38, 0x7e9d,
	0x8163, 0x12c8, 0xb3c0, 0x66d0, 0x9236, 0x41ce, 0xe0e6, 0x7c2a,
	0x877b, 0x2b1f, 0xc946, 0x73b6, 0xa129, 0x55f6, 0xf9b8, 0x7fd9,
	0x800a, 0x0324, 0xa7bd, 0x5cb4, 0x8afb, 0x33df, 0xd1ef, 0x776c,
	0x831c, 0x1c0c, 0xbb85, 0x6c24, 0x9759, 0x49b4, 0xea1e, 0x7e1e,
	0x80f6, 0x0fab, 0xb140, 0x64e9, 0x90a1, 0x3f17, 0xdddc, 0x7b5d,
	0x8676, 0x2827, 0xc673, 0x7255, 0x9f14, 0x539b, 0xf695, 0x7fa7,
	0x8059, 0x096b, 0xac65, 0x60ec, 0x8dab, 0x398d, 0xd7d9, 0x798a,
	0x84a3, 0x2224, 0xc0e9, 0x6f5f, 0x9b17, 0x4ec0, 0xf055, 0x7f0a,
	0x81e2, 0x15e2, 0xb64c, 0x68a7, 0x93dc, 0x447b, 0xe3f4, 0x7ce4,
	0x8894, 0x2e11, 0xcc21, 0x7505, 0xa34c, 0x5843, 0xfcdc, 0x7ff6,
}

// bitRev9 is the 9-bit bit-reversal permutation table used to read
// IFFT outputs back in time order, and to look up twiddle factors
// during pre-processing.
var bitRev9 = [512]uint16{
	0x000, 0x100, 0x080, 0x180, 0x040, 0x140, 0x0c0, 0x1c0,
	0x020, 0x120, 0x0a0, 0x1a0, 0x060, 0x160, 0x0e0, 0x1e0,
	0x010, 0x110, 0x090, 0x190, 0x050, 0x150, 0x0d0, 0x1d0,
	0x030, 0x130, 0x0b0, 0x1b0, 0x070, 0x170, 0x0f0, 0x1f0,
	0x008, 0x108, 0x088, 0x188, 0x048, 0x148, 0x0c8, 0x1c8,
	0x028, 0x128, 0x0a8, 0x1a8, 0x068, 0x168, 0x0e8, 0x1e8,
	0x018, 0x118, 0x098, 0x198, 0x058, 0x158, 0x0d8, 0x1d8,
	0x038, 0x138, 0x0b8, 0x1b8, 0x078, 0x178, 0x0f8, 0x1f8,
	0x004, 0x104, 0x084, 0x184, 0x044, 0x144, 0x0c4, 0x1c4,
	0x024, 0x124, 0x0a4, 0x1a4, 0x064, 0x164, 0x0e4, 0x1e4,
	0x014, 0x114, 0x094, 0x194, 0x054, 0x154, 0x0d4, 0x1d4,
	0x034, 0x134, 0x0b4, 0x1b4, 0x074, 0x174, 0x0f4, 0x1f4,
	0x00c, 0x10c, 0x08c, 0x18c, 0x04c, 0x14c, 0x0cc, 0x1cc,
	0x02c, 0x12c, 0x0ac, 0x1ac, 0x06c, 0x16c, 0x0ec, 0x1ec,
	0x01c, 0x11c, 0x09c, 0x19c, 0x05c, 0x15c, 0x0dc, 0x1dc,
	0x03c, 0x13c, 0x0bc, 0x1bc, 0x07c, 0x17c, 0x0fc, 0x1fc,
	0x002, 0x102, 0x082, 0x182, 0x042, 0x142, 0x0c2, 0x1c2,
	0x022, 0x122, 0x0a2, 0x1a2, 0x062, 0x162, 0x0e2, 0x1e2,
	0x012, 0x112, 0x092, 0x192, 0x052, 0x152, 0x0d2, 0x1d2,
	0x032, 0x132, 0x0b2, 0x1b2, 0x072, 0x172, 0x0f2, 0x1f2,
	0x00a, 0x10a, 0x08a, 0x18a, 0x04a, 0x14a, 0x0ca, 0x1ca,
	0x02a, 0x12a, 0x0aa, 0x1aa, 0x06a, 0x16a, 0x0ea, 0x1ea,
	0x01a, 0x11a, 0x09a, 0x19a, 0x05a, 0x15a, 0x0da, 0x1da,
	0x03a, 0x13a, 0x0ba, 0x1ba, 0x07a, 0x17a, 0x0fa, 0x1fa,
	0x006, 0x106, 0x086, 0x186, 0x046, 0x146, 0x0c6, 0x1c6,
	0x026, 0x126, 0x0a6, 0x1a6, 0x066, 0x166, 0x0e6, 0x1e6,
	0x016, 0x116, 0x096, 0x196, 0x056, 0x156, 0x0d6, 0x1d6,
	0x036, 0x136, 0x0b6, 0x1b6, 0x076, 0x176, 0x0f6, 0x1f6,
	0x00e, 0x10e, 0x08e, 0x18e, 0x04e, 0x14e, 0x0ce, 0x1ce,
	0x02e, 0x12e, 0x0ae, 0x1ae, 0x06e, 0x16e, 0x0ee, 0x1ee,
	0x01e, 0x11e, 0x09e, 0x19e, 0x05e, 0x15e, 0x0de, 0x1de,
	0x03e, 0x13e, 0x0be, 0x1be, 0x07e, 0x17e, 0x0fe, 0x1fe,
	0x001, 0x101, 0x081, 0x181, 0x041, 0x141, 0x0c1, 0x1c1,
	0x021, 0x121, 0x0a1, 0x1a1, 0x061, 0x161, 0x0e1, 0x1e1,
	0x011, 0x111, 0x091, 0x191, 0x051, 0x151, 0x0d1, 0x1d1,
	0x031, 0x131, 0x0b1, 0x1b1, 0x071, 0x171, 0x0f1, 0x1f1,
	0x009, 0x109, 0x089, 0x189, 0x049, 0x149, 0x0c9, 0x1c9,
	0x029, 0x129, 0x0a9, 0x1a9, 0x069, 0x169, 0x0e9, 0x1e9,
	0x019, 0x119, 0x099, 0x199, 0x059, 0x159, 0x0d9, 0x1d9,
	0x039, 0x139, 0x0b9, 0x1b9, 0x079, 0x179, 0x0f9, 0x1f9,
	0x005, 0x105, 0x085, 0x185, 0x045, 0x145, 0x0c5, 0x1c5,
	0x025, 0x125, 0x0a5, 0x1a5, 0x065, 0x165, 0x0e5, 0x1e5,
	0x015, 0x115, 0x095, 0x195, 0x055, 0x155, 0x0d5, 0x1d5,
	0x035, 0x135, 0x0b5, 0x1b5, 0x075, 0x175, 0x0f5, 0x1f5,
	0x00d, 0x10d, 0x08d, 0x18d, 0x04d, 0x14d, 0x0cd, 0x1cd,
	0x02d, 0x12d, 0x0ad, 0x1ad, 0x06d, 0x16d, 0x0ed, 0x1ed,
	0x01d, 0x11d, 0x09d, 0x19d, 0x05d, 0x15d, 0x0dd, 0x1dd,
	0x03d, 0x13d, 0x0bd, 0x1bd, 0x07d, 0x17d, 0x0fd, 0x1fd,
	0x003, 0x103, 0x083, 0x183, 0x043, 0x143, 0x0c3, 0x1c3,
	0x023, 0x123, 0x0a3, 0x1a3, 0x063, 0x163, 0x0e3, 0x1e3,
	0x013, 0x113, 0x093, 0x193, 0x053, 0x153, 0x0d3, 0x1d3,
	0x033, 0x133, 0x0b3, 0x1b3, 0x073, 0x173, 0x0f3, 0x1f3,
	0x00b, 0x10b, 0x08b, 0x18b, 0x04b, 0x14b, 0x0cb, 0x1cb,
	0x02b, 0x12b, 0x0ab, 0x1ab, 0x06b, 0x16b, 0x0eb, 0x1eb,
	0x01b, 0x11b, 0x09b, 0x19b, 0x05b, 0x15b, 0x0db, 0x1db,
	0x03b, 0x13b, 0x0bb, 0x1bb, 0x07b, 0x17b, 0x0fb, 0x1fb,
	0x007, 0x107, 0x087, 0x187, 0x047, 0x147, 0x0c7, 0x1c7,
	0x027, 0x127, 0x0a7, 0x1a7, 0x067, 0x167, 0x0e7, 0x1e7,
	0x017, 0x117, 0x097, 0x197, 0x057, 0x157, 0x0d7, 0x1d7,
	0x037, 0x137, 0x0b7, 0x1b7, 0x077, 0x177, 0x0f7, 0x1f7,
	0x00f, 0x10f, 0x08f, 0x18f, 0x04f, 0x14f, 0x0cf, 0x1cf,
	0x02f, 0x12f, 0x0af, 0x1af, 0x06f, 0x16f, 0x0ef, 0x1ef,
	0x01f, 0x11f, 0x09f, 0x19f, 0x05f, 0x15f, 0x0df, 0x1df,
	0x03f, 0x13f, 0x0bf, 0x1bf, 0x07f, 0x17f, 0x0ff, 0x1ff,
}

// overlapCoefficients is the 16-tap crossfade window applied between
// the tail of the previous frame's output and the head of the new
// frame's output.
var overlapCoefficients = [16]uint16{
	0x013c, 0x0734, 0x1090, 0x1cec, 0x2bf6, 0x3d07, 0x4ef6, 0x6029,
	0x6eec, 0x79fa, 0x80df, 0x8405, 0x8463, 0x8326, 0x816e, 0x8030,
}
