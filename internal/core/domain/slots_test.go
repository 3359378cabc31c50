package domain

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestSlotLabels_Vocabulary(t *testing.T) {
	labels := SlotLabels()
	if len(labels) != 14 {
		t.Fatalf("expected 14 labels, got %d", len(labels))
	}
	if labels[0] != "09:00" || labels[13] != "22:00" {
		t.Fatalf("unexpected bounds: %s .. %s", labels[0], labels[13])
	}

	labels[0] = "mutated"
	if SlotLabels()[0] != "09:00" {
		t.Fatalf("SlotLabels must return a copy")
	}
}

func TestSlotIndex(t *testing.T) {
	cases := map[string]bool{
		"09:00": true,
		"15:00": true,
		"22:00": true,
		"08:00": false,
		"23:00": false,
		"9:00":  false,
		"10:30": false,
		"":      false,
	}
	for label, want := range cases {
		if _, ok := SlotIndex(label); ok != want {
			t.Errorf("SlotIndex(%q) = %v, want %v", label, ok, want)
		}
	}
}

func TestSlotTable_ClaimOnce(t *testing.T) {
	table := NewSlotTable()

	if ok, err := table.Available("10:00"); err != nil || !ok {
		t.Fatalf("expected 10:00 available, got %v %v", ok, err)
	}
	if err := table.Claim("10:00"); err != nil {
		t.Fatalf("first claim failed: %v", err)
	}
	if err := table.Claim("10:00"); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable, got %v", err)
	}
	if ok, _ := table.Available("10:00"); ok {
		t.Fatalf("expected 10:00 taken")
	}
	if got := table.AvailableCount(); got != SlotCount-1 {
		t.Fatalf("expected %d open slots, got %d", SlotCount-1, got)
	}
}

func TestSlotTable_UnknownLabel(t *testing.T) {
	table := NewSlotTable()

	if err := table.Claim("08:00"); !errors.Is(err, ErrUnknownSlot) {
		t.Fatalf("expected ErrUnknownSlot, got %v", err)
	}
	if _, err := table.Available("23:00"); !errors.Is(err, ErrUnknownSlot) {
		t.Fatalf("expected ErrUnknownSlot, got %v", err)
	}
}

func TestSlotTable_Snapshot(t *testing.T) {
	table := NewSlotTable()
	_ = table.Claim("22:00")

	snap := table.Snapshot()
	if len(snap) != SlotCount {
		t.Fatalf("expected %d slots, got %d", SlotCount, len(snap))
	}
	for _, s := range snap[:SlotCount-1] {
		if !s.Available {
			t.Errorf("slot %s should be available", s.Label)
		}
	}
	if last := snap[SlotCount-1]; last.Label != "22:00" || last.Available {
		t.Errorf("unexpected last slot: %+v", last)
	}
}

func TestSlotTable_ConcurrentClaim(t *testing.T) {
	table := NewSlotTable()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if table.Claim("18:00") == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	if wins.Load() != 1 {
		t.Fatalf("expected exactly one winner, got %d", wins.Load())
	}
}
