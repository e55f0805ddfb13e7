/*
NAME
  checksum.go

DESCRIPTION
  checksum.go implements the DCS ROM checksum convention: a linear byte sum taken separately
  over even- and odd-offset bytes of a chip image, each mod 256. For
  U2, two reserved balancer bytes are chosen so both partial sums come
  out to zero; for U3 and up, the catalog simply records the actual
  sums.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package rom

// EvenOddSums returns the mod-256 sum of even-offset bytes and the
// mod-256 sum of odd-offset bytes of image.
func EvenOddSums(image []byte) (even, odd byte) {
	for i, b := range image {
		if i%2 == 0 {
			even += b
		} else {
			odd += b
		}
	}
	return even, odd
}

// Checksum packs an (even, odd) partial-sum pair into the 16-bit
// catalog checksum field (even sum in the high byte, odd sum in the
// low byte, matching the ROM-table layout used for U3 and up).
func Checksum(even, odd byte) uint16 {
	return uint16(even)<<8 | uint16(odd)
}

// BalancerBytes computes the two balancer bytes that, once written
// into U2's reserved even/odd balancer slot, make image's even and
// odd byte sums both zero mod 256. even and odd are the image's
// current partial sums excluding the (zeroed) balancer slot.
func BalancerBytes(even, odd byte) (balEven, balOdd byte) {
	return byte(-int8(even)), byte(-int8(odd))
}
