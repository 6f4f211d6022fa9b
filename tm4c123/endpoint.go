package tm4c123

import (
	"github.com/ardnew/tivausb/pkg"
	"github.com/ardnew/tivausb/usbdevice"
)

// writeEndpoint queues data for transmission on a bulk/interrupt/
// isochronous IN endpoint. Returns ErrInvalidEndpoint if the endpoint was
// never allocated, ErrWouldBlock if the previous packet has not yet been
// consumed, and copies at most the endpoint's allocated max packet size,
// returning ErrBufferOverflow alongside the truncated count otherwise.
func (b *Bus) writeEndpoint(ep usbdevice.EndpointAddress, data []byte) (int, error) {
	maxPacketSize, ok := b.txTable.MaxPacketSize(ep.Index)
	if !ok {
		return 0, pkg.ErrInvalidEndpoint
	}

	bank := b.bank(ep.Index)

	if Get8(bank.txCSRL, txcsrlTXRDY, 1) != 0 {
		return 0, pkg.ErrWouldBlock
	}

	n := len(data)
	truncated := false
	if uint16(n) > maxPacketSize {
		n = int(maxPacketSize)
		truncated = true
	}

	for _, byt := range data[:n] {
		Write8(bank.fifo, byt)
	}
	Set8(bank.txCSRL, txcsrlTXRDY)
	b.txBusy[ep.Index-1] = true

	if truncated {
		return n, pkg.ErrBufferOverflow
	}
	return n, nil
}

// readEndpoint copies received data from a bulk/interrupt/isochronous OUT
// endpoint into buf, discarding whatever does not fit (spec §8.7): a
// 24-byte packet read into an 8-byte buf copies only the first 8 bytes
// but still reports 24, and the FIFO is always left empty. Returns
// ErrInvalidEndpoint if the endpoint was never allocated, and
// ErrWouldBlock if no packet is ready.
func (b *Bus) readEndpoint(ep usbdevice.EndpointAddress, buf []byte) (int, error) {
	if _, ok := b.rxTable.MaxPacketSize(ep.Index); !ok {
		return 0, pkg.ErrInvalidEndpoint
	}

	bank := b.bank(ep.Index)

	if Get8(bank.rxCSRL, rxcsrlRXRDY, 1) == 0 {
		return 0, pkg.ErrWouldBlock
	}

	count := Read16(bank.rxCount)
	copied := int(count)
	if copied > len(buf) {
		copied = len(buf)
	}

	for i := 0; i < copied; i++ {
		buf[i] = Read8(bank.fifo)
	}
	for i := copied; i < int(count); i++ {
		Read8(bank.fifo)
	}

	Clear8(bank.rxCSRL, rxcsrlRXRDY)
	b.rxWaiting[ep.Index-1] = false

	return int(count), nil
}

// pollEndpoint records IN-complete and OUT-received events for a single
// non-zero endpoint index. The TX half is edge-triggered against txBusy
// so a single completed packet is reported exactly once. The RX half
// implements the rx_waiting invariant of spec §3: once RXRDY has been
// observed set, OutReceived[idx] stays true on every subsequent Poll
// call — regardless of whether RXRDY is still set — until readEndpoint
// clears rxWaiting on a successful read.
func (b *Bus) pollEndpoint(idx uint8, result *usbdevice.PollResult) {
	bank := b.bank(idx)
	slot := idx - 1

	if _, ok := b.txTable.MaxPacketSize(idx); ok {
		busy := Get8(bank.txCSRL, txcsrlTXRDY, 1) != 0
		if b.txBusy[slot] && !busy {
			result.InComplete[idx] = true
		}
		b.txBusy[slot] = busy
	}

	if _, ok := b.rxTable.MaxPacketSize(idx); ok {
		if Get8(bank.rxCSRL, rxcsrlRXRDY, 1) != 0 {
			b.rxWaiting[slot] = true
		}
		result.OutReceived[idx] = b.rxWaiting[slot]
	}
}
