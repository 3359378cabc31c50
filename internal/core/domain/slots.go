package domain

import (
	"fmt"
	"sync"
)

const (
	FirstSlotHour = 9
	LastSlotHour  = 22
	SlotCount     = LastSlotHour - FirstSlotHour + 1

	// DateFormat is the layout the booking desk asks dates in.
	DateFormat = "2006-01-02"
)

var slotLabels = func() [SlotCount]string {
	var out [SlotCount]string
	for i := range out {
		out[i] = fmt.Sprintf("%02d:00", FirstSlotHour+i)
	}
	return out
}()

// SlotLabels returns the fixed daily slot vocabulary, "09:00" through "22:00".
func SlotLabels() []string {
	out := make([]string, SlotCount)
	copy(out, slotLabels[:])
	return out
}

// SlotIndex returns the position of label in the vocabulary.
func SlotIndex(label string) (int, bool) {
	for i, l := range slotLabels {
		if l == label {
			return i, true
		}
	}
	return 0, false
}

// Slot is a point-in-time view of one entry of a SlotTable.
type Slot struct {
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// SlotTable tracks availability of the daily slots of one facility.
// Availability only ever moves from available to taken.
type SlotTable struct {
	mu    sync.Mutex
	taken [SlotCount]bool
}

// NewSlotTable returns a table with every slot available.
func NewSlotTable() *SlotTable {
	return &SlotTable{}
}

// Available reports whether label can still be claimed.
func (t *SlotTable) Available(label string) (bool, error) {
	i, ok := SlotIndex(label)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownSlot, label)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.taken[i], nil
}

// Claim marks label as taken. It fails with ErrSlotUnavailable when another
// caller got there first.
func (t *SlotTable) Claim(label string) error {
	i, ok := SlotIndex(label)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, label)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.taken[i] {
		return fmt.Errorf("%w: %s", ErrSlotUnavailable, label)
	}
	t.taken[i] = true
	return nil
}

// Snapshot returns every slot in vocabulary order.
func (t *SlotTable) Snapshot() []Slot {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Slot, SlotCount)
	for i, l := range slotLabels {
		out[i] = Slot{Label: l, Available: !t.taken[i]}
	}
	return out
}

// AvailableCount returns how many slots are still open.
func (t *SlotTable) AvailableCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, taken := range t.taken {
		if !taken {
			n++
		}
	}
	return n
}
