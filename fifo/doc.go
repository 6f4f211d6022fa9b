// Package fifo implements the FIFO sizing table and endpoint allocator
// (spec §4.1, §4.2): pure, hardware-free logic that sits below the
// tm4c123 register binding.
//
// [SizeFor] maps a requested maximum packet size to the hardware bucket
// that will hold it. [Table] tracks which of the seven non-zero endpoint
// indices are allocated, per direction, and hands out fresh addresses.
// Neither type touches the USB peripheral; tm4c123.Bus.Reset walks a
// [Table] to lay out FIFO RAM (spec §4.3).
package fifo
