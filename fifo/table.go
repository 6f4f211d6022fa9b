package fifo

import "github.com/ardnew/tivausb/pkg"

// NumEndpoints is the number of independent per-direction endpoint slots
// the TM4C123 USB peripheral exposes beyond the control pipe (spec §3:
// EndpointSlot is defined for index 1..7).
const NumEndpoints = 7

// slot holds the allocation state of a single non-zero endpoint index, for
// one direction. Per spec §3, once allocated maxPacketSize is never
// mutated until the driver is destroyed.
type slot struct {
	allocated     bool
	maxPacketSize uint16
}

// Table tracks which of the seven non-zero endpoint indices, for a single
// direction, are allocated (spec §3 "Bus state": "Two endpoint tables (IN,
// OUT), each length 7"). A Bus owns one Table per direction.
type Table struct {
	slots [NumEndpoints]slot
}

// NewTable returns an empty endpoint table.
func NewTable() *Table {
	return &Table{}
}

// AllocatedSlot describes one occupied endpoint slot, in index order, for
// FIFO layout planning (spec §4.3).
type AllocatedSlot struct {
	Index         uint8 // 1..7
	MaxPacketSize uint16
}

// Alloc implements the endpoint-allocation algorithm of spec §4.2 steps
// 3-6: if requestedIndex names a free slot, use it; otherwise scan for the
// first free slot. requestedIndex 0 means "no explicit index requested".
// Returns the 1-based endpoint index, or ErrEndpointOverflow if the table
// is full.
func (t *Table) Alloc(requestedIndex uint8, maxPacketSize uint16) (uint8, error) {
	if requestedIndex > NumEndpoints {
		pkg.Fatal(pkg.ComponentFIFO, "requested endpoint index out of range",
			"index", requestedIndex, "max", NumEndpoints)
	}

	chosen := -1

	if requestedIndex != 0 && !t.slots[requestedIndex-1].allocated {
		chosen = int(requestedIndex - 1)
	} else {
		for i, s := range t.slots {
			if !s.allocated {
				chosen = i
				break
			}
		}
	}

	if chosen < 0 {
		return 0, pkg.ErrEndpointOverflow
	}

	if maxPacketSize < 1 {
		maxPacketSize = 1
	}

	t.slots[chosen] = slot{allocated: true, maxPacketSize: maxPacketSize}

	return uint8(chosen + 1), nil
}

// MaxPacketSize returns the allocated maximum packet size for the 1-based
// endpoint index, and whether the slot is allocated at all.
func (t *Table) MaxPacketSize(index uint8) (uint16, bool) {
	if index == 0 || index > NumEndpoints {
		return 0, false
	}
	s := t.slots[index-1]
	return s.maxPacketSize, s.allocated
}

// Allocated returns every occupied slot in ascending index order, used by
// the FIFO layout planner (spec §4.3) to walk the table deterministically.
func (t *Table) Allocated() []AllocatedSlot {
	var out []AllocatedSlot
	for i, s := range t.slots {
		if s.allocated {
			out = append(out, AllocatedSlot{Index: uint8(i + 1), MaxPacketSize: s.maxPacketSize})
		}
	}
	return out
}
