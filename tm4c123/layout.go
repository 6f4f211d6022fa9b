package tm4c123

import (
	"github.com/ardnew/tivausb/fifo"
	"github.com/ardnew/tivausb/pkg"
)

// fifoRAMSize is the total shared FIFO RAM, in bytes, behind the USB0
// peripheral's TX/RX data ports.
const fifoRAMSize = 4096

// ep0FIFOReserved is the fixed region at the start of FIFO RAM the
// hardware dedicates to endpoint 0; it is never sized or addressed
// through TXFIFOSZ/TXFIFOADD, so the layout planner starts allocating
// endpoints 1..7 immediately after it.
const ep0FIFOReserved = 64

// fifoRAMAddressUnit is the granularity of the TXFIFOADD/RXFIFOADD
// registers: they hold a FIFO RAM byte offset divided by this unit.
const fifoRAMAddressUnit = 8

// layoutFIFO walks the OUT table fully, then the IN table fully (spec
// §4.3's literal "OUT tables first, then IN"), assigning each allocated
// endpoint a non-overlapping region of FIFO RAM: for each allocated
// slot it looks up the bucket size for the endpoint's max packet size
// via fifo.SizeFor, programs the size code and base address registers,
// and advances the cursor. Returns ErrEndpointOverflow if the allocated
// endpoints together do not fit in the remaining FIFO RAM.
func (b *Bus) layoutFIFO() error {
	cursor := uint16(ep0FIFOReserved)

	for _, slot := range b.rxTable.Allocated() {
		bank := b.bank(slot.Index)
		next, err := placeEndpointFIFO(bank.rxFIFOSz, bank.rxFIFOAdd, cursor, slot.MaxPacketSize)
		if err != nil {
			return err
		}
		cursor = next
	}

	for _, slot := range b.txTable.Allocated() {
		bank := b.bank(slot.Index)
		next, err := placeEndpointFIFO(bank.txFIFOSz, bank.txFIFOAdd, cursor, slot.MaxPacketSize)
		if err != nil {
			return err
		}
		cursor = next
	}

	return nil
}

// placeEndpointFIFO programs one endpoint direction's size-code and
// base-address registers at the current cursor, and returns the cursor
// advanced past the bucket it was given.
func placeEndpointFIFO(sizeReg, addrReg uintptr, cursor uint16, maxPacketSize uint16) (uint16, error) {
	code, bucket := fifo.SizeFor(maxPacketSize)

	if uint32(cursor)+uint32(bucket) > fifoRAMSize {
		pkg.LogError(pkg.ComponentFIFO, "FIFO RAM exhausted during layout",
			"cursor", cursor, "bucket", bucket, "capacity", fifoRAMSize)
		return cursor, pkg.ErrEndpointOverflow
	}

	Write8(sizeReg, code)
	Write16(addrReg, cursor/fifoRAMAddressUnit)

	return cursor + bucket, nil
}
