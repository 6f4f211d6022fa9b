package tm4c123

import (
	"sync"

	"github.com/ardnew/tivausb/fifo"
	"github.com/ardnew/tivausb/pkg"
	"github.com/ardnew/tivausb/usbdevice"
)

// Bus is the TM4C123 USB0 peripheral driver, implementing
// usbdevice.Bus. Its exported methods are expected to run either with
// USB interrupts disabled or from within the USB0 interrupt handler
// itself (spec §5); a mutex only guards the endpoint allocation tables,
// which are touched before Enable and never again afterward.
type Bus struct {
	base  uintptr
	board BoardSupport
	banks [7]endpointBank

	faddr uintptr
	power uintptr
	csrl0 uintptr
	count0 uintptr
	fifo0  uintptr
	isReg  uintptr
	ieReg  uintptr

	mu      sync.Mutex
	txTable *fifo.Table
	rxTable *fifo.Table

	ep0 controlPipe

	txBusy [7]bool

	// rxWaiting is the rx_waiting bitmap of spec §3: bit i is set once
	// endpoint i has been reported to the class-stack as having data, and
	// stays set across any number of Poll calls until a Read on that
	// endpoint completes successfully.
	rxWaiting [7]bool

	suspended bool
}

// NewBus constructs a driver bound to the USB0 peripheral at base, using
// board for the clock/pin/interrupt bring-up spec §6 calls out as an
// external collaborator.
func NewBus(base uintptr, board BoardSupport) *Bus {
	return &Bus{
		base:    base,
		board:   board,
		banks:   newEndpointBanks(base),
		faddr:   base + offFADDR,
		power:   base + offPOWER,
		csrl0:   base + offCSRL0,
		count0:  base + offCount0,
		fifo0:   base + offFIFO0,
		isReg:   base + offIS,
		ieReg:   base + offIE,
		txTable: fifo.NewTable(),
		rxTable: fifo.NewTable(),
	}
}

// AllocEndpoint reserves an endpoint slot (spec §4.2). Index 0 is never
// allocated through this path — the control pipe always exists and is
// addressed directly by tm4c123 endpoint address {0, either direction}.
func (b *Bus) AllocEndpoint(dir usbdevice.Direction, requestedIndex uint8, epType usbdevice.EndpointType, maxPacketSize uint16) (usbdevice.EndpointAddress, error) {
	if requestedIndex == 0 && epType == usbdevice.EndpointTypeControl {
		return usbdevice.EndpointAddress{Index: 0, Direction: dir}, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	table := b.tableFor(dir)

	idx, err := table.Alloc(requestedIndex, maxPacketSize)
	if err != nil {
		return usbdevice.EndpointAddress{}, err
	}

	return usbdevice.EndpointAddress{Index: idx, Direction: dir}, nil
}

func (b *Bus) tableFor(dir usbdevice.Direction) *fifo.Table {
	if dir == usbdevice.DirectionIn {
		return b.txTable
	}
	return b.rxTable
}

// Enable brings the peripheral out of reset (spec §4.5, §6): gates the
// clock and pin mux and interrupt through BoardSupport, then asserts
// SOFTCONN so the host sees the device attach.
func (b *Bus) Enable() error {
	b.board.EnableClock()
	b.board.ConfigurePins()
	b.board.EnableInterrupt(USB0IRQ)

	Set8(b.power, powerSoftConn)
	Set8(b.ieReg, isReset)

	pkg.LogDebug(pkg.ComponentBus, "USB0 enabled")

	return nil
}

// Reset lays out FIFO RAM for every allocated endpoint (spec §4.3) and
// returns the control pipe to idle. Called once before the first Enable
// and again every time the hardware reports a bus reset via IS.
func (b *Bus) Reset() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.layoutFIFO(); err != nil {
		return err
	}

	b.ep0 = controlPipe{stage: usbdevice.ControlStage{Tag: usbdevice.StageIdle}}
	b.suspended = false

	pkg.LogDebug(pkg.ComponentBus, "USB0 FIFO layout complete")

	return nil
}

// SetDeviceAddress defers the FADDR write until the in-flight control
// transfer's status stage completes (spec §9): writing the new address
// immediately would make the device stop responding to the zero-length
// status packet of the very SET_ADDRESS request that requested it.
func (b *Bus) SetDeviceAddress(addr uint8) {
	b.ep0.pendingAddress = addr
	b.ep0.hasPendingAddress = true

	pkg.LogDebug(pkg.ComponentBus, "deferring device address until status stage completes", "address", addr)
}

// Write queues data for transmission on ep (spec §4.5, §6).
func (b *Bus) Write(ep usbdevice.EndpointAddress, data []byte) (int, error) {
	if ep.Index == 0 {
		return b.writeEP0(data)
	}
	return b.writeEndpoint(ep, data)
}

// Read copies received data from ep into buf (spec §4.5, §6).
func (b *Bus) Read(ep usbdevice.EndpointAddress, buf []byte) (int, error) {
	if ep.Index == 0 {
		return b.readEP0(buf)
	}
	return b.readEndpoint(ep, buf)
}

// Poll drains interrupt status and advances the control pipe (spec
// §4.5, §6). It is meant to be called from the USB0 interrupt handler.
// The order of checks is the one spec §4.5 specifies: a bus reset takes
// priority over suspend, which takes priority over resume; only when
// none of the three fired does Poll compute endpoint-0 and endpoint
// events.
func (b *Bus) Poll() usbdevice.PollResult {
	var result usbdevice.PollResult

	is := Read8(b.isReg)

	switch {
	case is&(1<<isReset) != 0:
		pkg.LogDebug(pkg.ComponentBus, "bus reset observed")
		_ = b.Reset()
		result.BusReset = true

	case is&(1<<isSuspend) != 0:
		b.Suspend()
		result.Suspended = true

	case is&(1<<isResume) != 0:
		b.Resume()
		result.Resumed = true

	default:
		b.pollEP0(&result)

		for idx := uint8(1); idx <= fifo.NumEndpoints; idx++ {
			b.pollEndpoint(idx, &result)
		}
	}

	return result
}

// SetStalled stalls or clears the stall condition on ep (spec §4.5, §6).
func (b *Bus) SetStalled(ep usbdevice.EndpointAddress, stalled bool) {
	if ep.Index == 0 {
		if stalled {
			Set8(b.csrl0, csrl0STALL)
			b.ep0.stage = usbdevice.ControlStage{Tag: usbdevice.StageStalled}
		} else {
			Clear8(b.csrl0, csrl0STALL)
		}
		return
	}

	reg, pos := b.endpointStallRegister(ep)
	if stalled {
		Set8(reg, pos)
	} else {
		Clear8(reg, pos)
	}
}

// IsStalled reports whether ep is currently stalled.
func (b *Bus) IsStalled(ep usbdevice.EndpointAddress) bool {
	if ep.Index == 0 {
		return Read8(b.csrl0)&(1<<csrl0STALLED) != 0
	}

	reg, pos := b.endpointStallRegister(ep)
	return Get8(reg, pos, 1) != 0
}

func (b *Bus) endpointStallRegister(ep usbdevice.EndpointAddress) (uintptr, uint) {
	bank := b.bank(ep.Index)
	if ep.Direction == usbdevice.DirectionIn {
		return bank.txCSRL, txcsrlStall
	}
	return bank.rxCSRL, rxcsrlStall
}

// Suspend and Resume track bus suspend state for the class-stack; this
// driver implements no low-power behavior beyond bookkeeping.
func (b *Bus) Suspend() { b.suspended = true }
func (b *Bus) Resume()  { b.suspended = false }
