package usbdevice

import "testing"

func TestDirectionString(t *testing.T) {
	if got := DirectionIn.String(); got != "IN" {
		t.Errorf("DirectionIn.String() = %q, want %q", got, "IN")
	}
	if got := DirectionOut.String(); got != "OUT" {
		t.Errorf("DirectionOut.String() = %q, want %q", got, "OUT")
	}
}

func TestEndpointAddressString(t *testing.T) {
	addr := EndpointAddress{Index: 3, Direction: DirectionIn}
	if got, want := addr.String(), "EP3-IN"; got != want {
		t.Errorf("EndpointAddress.String() = %q, want %q", got, want)
	}
}
