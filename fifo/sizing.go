package fifo

import "github.com/ardnew/tivausb/pkg"

// buckets is the power-of-two FIFO bucket ladder the TM4C123 USB
// peripheral supports, smallest first. Index i holds size code i.
var buckets = [9]uint16{8, 16, 32, 64, 128, 256, 512, 1024, 2048}

// MaxPacketSize is the largest payload any endpoint FIFO can hold.
const MaxPacketSize = 2048

// SizeFor returns the hardware size code and bucket size in bytes for a
// requested maximum packet size, per spec §4.1: the smallest bucket in
// {8,16,...,2048} that is >= requested. Requests above MaxPacketSize are
// a programming error and abort the driver.
func SizeFor(requested uint16) (code uint8, bucket uint16) {
	if requested > MaxPacketSize {
		pkg.Fatal(pkg.ComponentFIFO, "requested packet size exceeds FIFO capacity",
			"requested", requested, "max", MaxPacketSize)
	}

	for i, b := range buckets {
		if b >= requested {
			return uint8(i), b
		}
	}

	// Unreachable: requested <= MaxPacketSize == buckets[len-1].
	pkg.Fatal(pkg.ComponentFIFO, "no FIFO bucket found for requested size", "requested", requested)
	return 0, 0
}
