package tm4c123

// Register byte offsets from the USB0 peripheral base address, named after
// the fields the original register map exposes (spec §6): FADDR, POWER,
// CSRL0, COUNT0, FIFO0..FIFO7, TXCSRL1..7, RXCSRL1..7, TXMAXP1..7,
// RXMAXP1..7, RXCOUNT1..7, TXFIFOSZ/RXFIFOSZ, TXFIFOADD/RXFIFOADD, TXIS,
// RXIS, IS, IE. Endpoint 0 has its own fixed control/status/count/FIFO
// registers; endpoints 1..7 repeat a fixed-stride block of per-direction
// registers rather than being selected through an index register, so the
// dispatcher in bank.go can address any endpoint's registers directly.
const (
	offFADDR = 0x000 // 8-bit: device address
	offPOWER = 0x001 // 8-bit: power/reset/suspend control
	offTXIS  = 0x002 // 16-bit: TX interrupt status, one bit per endpoint 0..7
	offRXIS  = 0x004 // 16-bit: RX interrupt status, one bit per endpoint 1..7
	offTXIE  = 0x006 // 16-bit: TX interrupt enable
	offRXIE  = 0x008 // 16-bit: RX interrupt enable
	offIS    = 0x00A // 8-bit: common interrupt status (reset/suspend/resume)
	offIE    = 0x00B // 8-bit: common interrupt enable

	offCSRL0  = 0x010 // 8-bit: endpoint 0 control/status
	offCount0 = 0x011 // 8-bit: endpoint 0 received byte count
	offFIFO0  = 0x012 // 8-bit, byte-at-a-time: endpoint 0 FIFO data port

	// epBlockBase is the start of the repeating register block for
	// endpoints 1..7. epBlockStride spans one endpoint's TX/RX
	// control/status/count/FIFO registers.
	epBlockBase   = 0x020
	epBlockStride = 0x010

	// Offsets within one endpoint's block, added to epBlockBase +
	// (index-1)*epBlockStride.
	epOffTXMAXP  = 0x00 // 16-bit
	epOffTXCSRL  = 0x02 // 8-bit
	epOffRXMAXP  = 0x04 // 16-bit
	epOffRXCSRL  = 0x06 // 8-bit
	epOffRXCount = 0x08 // 16-bit
	epOffFIFO    = 0x0A // 8-bit, byte-at-a-time

	// sizeBlockBase / sizeBlockStride cover the TXFIFOSZ/RXFIFOSZ and
	// TXFIFOADD/RXFIFOADD registers that configure FIFO RAM layout (spec
	// §4.3). They live in a separate block because they hold a FIFO size
	// code and a FIFO RAM address (in fifoRAMAddressUnit units), not an
	// endpoint control/status bit, and are only written during Reset.
	sizeBlockBase   = 0x0A0
	sizeBlockStride = 0x008

	szOffTXFIFOSZ  = 0x00 // 8-bit
	szOffRXFIFOSZ  = 0x01 // 8-bit
	szOffTXFIFOADD = 0x02 // 16-bit
	szOffRXFIFOADD = 0x04 // 16-bit

	// CSRL0 bit positions (spec §4.4 endpoint-0 state machine).
	csrl0RXRDY   = 0
	csrl0TXRDY   = 1
	csrl0STALL   = 2
	csrl0SETEND  = 4
	csrl0SETENDC = 7 // write-1-to-clear alias for csrl0SETEND
	csrl0DATAEND = 3
	csrl0STALLED = 5

	// TXCSRL1..7 / RXCSRL1..7 bit positions.
	txcsrlTXRDY  = 0
	txcsrlStall  = 4
	rxcsrlRXRDY  = 0
	rxcsrlStall  = 4

	// POWER bit positions.
	powerSoftConn = 6
	powerReset    = 0
	powerSuspend  = 1
	powerResume   = 2

	// IS/IE bit positions.
	isReset   = 2
	isResume  = 1
	isSuspend = 0
)
