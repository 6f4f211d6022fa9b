package tm4c123

import "unsafe"

// mmioSize is large enough to cover every register offset this driver
// writes, including the endpoint 1..7 block and the FIFO-size block.
const mmioSize = 1024

type fakeBoard struct {
	clockEnabled bool
	pinsConfigured bool
	enabledIRQ     int
}

func (f *fakeBoard) EnableClock()             { f.clockEnabled = true }
func (f *fakeBoard) ConfigurePins()           { f.pinsConfigured = true }
func (f *fakeBoard) EnableInterrupt(irq int)   { f.enabledIRQ = irq }

// newTestBus allocates a fake MMIO region and returns a Bus bound to it,
// along with the backing memory so tests can peek at raw register bytes.
func newTestBus() (*Bus, *[mmioSize]byte) {
	mem := new([mmioSize]byte)
	base := uintptr(unsafe.Pointer(&mem[0]))
	return NewBus(base, &fakeBoard{}), mem
}
