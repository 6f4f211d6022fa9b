package tm4c123

import (
	"testing"

	"github.com/ardnew/tivausb/fifo"
	"github.com/ardnew/tivausb/usbdevice"
)

// TestLayoutFIFONonOverlap checks the testable property from spec §8.2:
// every allocated endpoint's FIFO RAM region, once Reset lays them out,
// occupies a disjoint byte range.
func TestLayoutFIFONonOverlap(t *testing.T) {
	bus, _ := newTestBus()

	type want struct {
		idx  uint8
		dir  usbdevice.Direction
		size uint16
	}
	requests := []want{
		{1, usbdevice.DirectionIn, 64},
		{1, usbdevice.DirectionOut, 64},
		{2, usbdevice.DirectionIn, 512},
		{3, usbdevice.DirectionIn, 8},
		{4, usbdevice.DirectionOut, 1024},
	}

	for _, r := range requests {
		if _, err := bus.AllocEndpoint(r.dir, r.idx, usbdevice.EndpointTypeBulk, r.size); err != nil {
			t.Fatalf("AllocEndpoint(%d, %v, %d): %v", r.idx, r.dir, r.size, err)
		}
	}

	if err := bus.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	type region struct {
		start, end uint16
	}
	var regions []region

	collect := func(table *fifo.Table) {
		for _, slot := range table.Allocated() {
			bank := bus.bank(slot.Index)
			var addrReg uintptr
			if table == bus.txTable {
				addrReg = bank.txFIFOAdd
			} else {
				addrReg = bank.rxFIFOAdd
			}
			base := Read16(addrReg) * fifoRAMAddressUnit
			_, bucket := fifo.SizeFor(slot.MaxPacketSize)
			regions = append(regions, region{start: base, end: base + bucket})
		}
	}
	collect(bus.txTable)
	collect(bus.rxTable)

	for i := range regions {
		for j := range regions {
			if i == j {
				continue
			}
			a, b := regions[i], regions[j]
			if a.start < b.end && b.start < a.end {
				t.Fatalf("regions overlap: %v and %v", a, b)
			}
		}
	}
}

func TestLayoutFIFOOverflow(t *testing.T) {
	bus, _ := newTestBus()

	for i := uint8(1); i <= fifo.NumEndpoints; i++ {
		if _, err := bus.AllocEndpoint(usbdevice.DirectionIn, i, usbdevice.EndpointTypeBulk, 2048); err != nil {
			t.Fatalf("AllocEndpoint(%d): %v", i, err)
		}
	}

	if err := bus.Reset(); err == nil {
		t.Fatal("Reset succeeded despite FIFO RAM exhaustion")
	}
}
