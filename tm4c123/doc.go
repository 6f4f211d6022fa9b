// Package tm4c123 implements the concrete USB device-mode controller
// driver for the Tiva C (TM4C123, Cortex-M4) USB0 peripheral: register
// access, FIFO layout planning, the endpoint-0 control-transfer state
// machine, and the [Bus] facade that implements usbdevice.Bus.
//
// Bus is the only exported entry point; callers construct one with
// [NewBus], call [Bus.Reset] and [Bus.Enable] once, then drive it from
// the USB0 interrupt handler via [Bus.Poll].
package tm4c123
