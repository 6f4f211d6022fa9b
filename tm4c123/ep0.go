package tm4c123

import (
	"github.com/ardnew/tivausb/pkg"
	"github.com/ardnew/tivausb/usbdevice"
)

// ep0MaxPacketSize is the fixed maximum packet size of the control pipe;
// unlike endpoints 1..7 it is never negotiated through AllocEndpoint.
const ep0MaxPacketSize = 64

// controlPipe is the endpoint-0 control-transfer state machine (spec
// §4.4): it tracks which stage of a SETUP/DATA/STATUS sequence the
// hardware is in, and defers the SET_ADDRESS register write until the
// status stage of that request actually completes.
type controlPipe struct {
	stage             usbdevice.ControlStage
	pendingAddress    uint8
	hasPendingAddress bool
}

// pollEP0 reads CSRL0 and advances the control-pipe state machine,
// recording any event the class-stack needs to see in result.
func (b *Bus) pollEP0(result *usbdevice.PollResult) {
	csrl := Read8(b.csrl0)

	if csrl&(1<<csrl0SETEND) != 0 {
		pkg.LogDebug(pkg.ComponentEP0, "SETEND observed, returning control pipe to idle",
			"stage", b.ep0.stage.Tag)
		Set8(b.csrl0, csrl0SETENDC)
		b.ep0.stage = usbdevice.ControlStage{Tag: usbdevice.StageIdle}
		b.ep0.hasPendingAddress = false
	}

	if csrl&(1<<csrl0RXRDY) != 0 {
		b.handleEP0RxReady(result)
	}

	if csrl&(1<<csrl0TXRDY) == 0 {
		b.handleEP0TxComplete(result)
	}
}

// handleEP0RxReady responds to a packet having arrived in FIFO0: a new
// SETUP packet if the pipe was idle or stalled, the zero-length OUT
// status packet completing an IN control transfer, or the next OUT data
// packet of a multi-packet OUT transfer.
func (b *Bus) handleEP0RxReady(result *usbdevice.PollResult) {
	switch b.ep0.stage.Tag {
	case usbdevice.StageIdle, usbdevice.StageStalled:
		b.ep0.stage = usbdevice.ControlStage{Tag: usbdevice.StageSetupReceived}
		result.SetupReceived = true

	case usbdevice.StageStatusOut:
		Clear8(b.csrl0, csrl0RXRDY)
		b.ep0.stage = usbdevice.ControlStage{Tag: usbdevice.StageIdle}

	case usbdevice.StageDataOutWaiting:
		result.OutReceived[0] = true

	default:
		pkg.LogWarn(pkg.ComponentEP0, "unexpected RXRDY in control pipe stage",
			"stage", b.ep0.stage.Tag)
	}
}

// handleEP0TxComplete responds to TXRDY having cleared on its own, which
// the hardware does once the host has pulled the packet we loaded. If
// that packet was the zero-length IN status packet of a SET_ADDRESS
// request, this is the point spec §9 requires the new address actually
// be written to FADDR.
func (b *Bus) handleEP0TxComplete(result *usbdevice.PollResult) {
	switch b.ep0.stage.Tag {
	case usbdevice.StageStatusIn:
		if b.ep0.hasPendingAddress {
			Write8(b.faddr, b.ep0.pendingAddress)
			pkg.LogDebug(pkg.ComponentEP0, "applied deferred device address",
				"address", b.ep0.pendingAddress)
			b.ep0.hasPendingAddress = false
		}
		b.ep0.stage = usbdevice.ControlStage{Tag: usbdevice.StageIdle}
		result.InComplete[0] = true

	case usbdevice.StageDataInWaiting, usbdevice.StageDataInLast:
		result.InComplete[0] = true
	}
}

// writeEP0 loads up to ep0MaxPacketSize bytes of data into FIFO0 and
// asserts TXRDY. A short packet (len(data) < ep0MaxPacketSize) also
// asserts DATAEND and moves the pipe to StageStatusOut, matching the
// convention that a short or zero-length IN packet terminates the data
// stage of a control transfer (spec §9 Open Question, resolved in
// DESIGN.md). A zero-length write outside a multi-packet IN data stage
// is instead the IN status packet of an OUT or no-data transfer and is
// sent through writeEP0Status, so a deferred SET_ADDRESS is applied once
// it completes. Returns ErrWouldBlock if the previous packet has not yet
// been consumed by the host.
func (b *Bus) writeEP0(data []byte) (int, error) {
	if Read8(b.csrl0)&(1<<csrl0TXRDY) != 0 {
		return 0, pkg.ErrWouldBlock
	}

	if len(data) == 0 && b.ep0.stage.Tag != usbdevice.StageDataInWaiting {
		b.writeEP0Status()
		return 0, nil
	}

	n := len(data)
	truncated := false
	if n > ep0MaxPacketSize {
		n = ep0MaxPacketSize
		truncated = true
	}

	for _, byt := range data[:n] {
		Write8(b.fifo0, byt)
	}

	if n < ep0MaxPacketSize {
		Set8(b.csrl0, csrl0DATAEND)
		b.ep0.stage = usbdevice.ControlStage{Tag: usbdevice.StageStatusOut}
	} else {
		b.ep0.stage = usbdevice.ControlStage{Tag: usbdevice.StageDataInWaiting}
	}
	Set8(b.csrl0, csrl0TXRDY)

	if truncated {
		return n, pkg.ErrBufferOverflow
	}
	return n, nil
}

// writeEP0Status loads the zero-length IN status packet that completes
// an OUT or no-data control transfer, asserting DATAEND alongside TXRDY.
func (b *Bus) writeEP0Status() {
	Set8(b.csrl0, csrl0DATAEND)
	Set8(b.csrl0, csrl0TXRDY)
	b.ep0.stage = usbdevice.ControlStage{Tag: usbdevice.StageStatusIn}
}

// readEP0 copies up to len(buf) received bytes out of FIFO0 and clears
// RXRDY once the full packet has been drained. Returns ErrWouldBlock if
// no packet is ready.
func (b *Bus) readEP0(buf []byte) (int, error) {
	csrl := Read8(b.csrl0)
	if csrl&(1<<csrl0RXRDY) == 0 {
		return 0, pkg.ErrWouldBlock
	}

	count := Read8(b.count0)
	n := int(count)
	if n > len(buf) {
		n = len(buf)
	}

	for i := 0; i < n; i++ {
		buf[i] = Read8(b.fifo0)
	}
	for i := n; i < int(count); i++ {
		Read8(b.fifo0) // drain remainder so RXRDY can clear cleanly
	}

	if b.ep0.stage.Tag == usbdevice.StageSetupReceived {
		b.ep0.stage = usbdevice.ControlStage{Tag: usbdevice.StageDataOutWaiting}
	}

	Clear8(b.csrl0, csrl0RXRDY)

	return n, nil
}
