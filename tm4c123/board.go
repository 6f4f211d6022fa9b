package tm4c123

// BoardSupport is the seam between this driver and the board bring-up
// code that owns clocks, pin muxing, and the interrupt controller: clock
// gating, PD4/PD5 pin configuration, and NVIC IRQ 44 enablement are the
// board's job, not the USB register driver's (spec §6). NewBus only
// stores the handle; Bus.Enable calls EnableClock, ConfigurePins, and
// EnableInterrupt with the USB0 IRQ number.
type BoardSupport interface {
	// EnableClock gates on the USB0 peripheral clock via the system
	// control module (RCGCUSB) and waits for it to stabilize.
	EnableClock()

	// ConfigurePins sets PD4/PD5 to their USB analog function.
	ConfigurePins()

	// EnableInterrupt unmasks irq at the NVIC.
	EnableInterrupt(irq int)
}

// USB0IRQ is the NVIC interrupt number for the USB0 peripheral.
const USB0IRQ = 44
