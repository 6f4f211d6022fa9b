// Package usbdevice defines the hardware-agnostic USB device-mode bus
// contract (spec §4.5, §6): the interface an upstream class-stack uses to
// allocate endpoints, move data, and receive interrupt-driven events,
// without referring to any particular USB peripheral.
//
// tm4c123.Bus is the one concrete implementation in this module. Nothing
// in this package touches registers, FIFOs, or interrupts directly.
package usbdevice
