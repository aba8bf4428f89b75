package entity

import (
	"errors"
	"testing"
)

func TestRecalculate(t *testing.T) {
	tests := []struct {
		name       string
		stock      float64
		maxCap     float64
		wantLevel  int
		wantStatus string
	}{
		{"half capacity quarter full", 50, 200, 25, StockLow},
		{"critical tier", 30, 200, 15, StockCritical},
		{"exactly 20 percent is critical", 40, 200, 20, StockCritical},
		{"exactly 50 percent is low", 100, 200, 50, StockLow},
		{"just above 50 percent is ok", 102, 200, 51, StockOK},
		{"full", 200, 200, 100, StockOK},
		{"empty", 0, 200, 0, StockCritical},
		{"rounded up across tier boundary", 101, 200, 51, StockOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := InventoryItem{Stock: tt.stock, MaxCapacity: tt.maxCap}
			if err := item.Recalculate(); err != nil {
				t.Fatalf("Recalculate: %v", err)
			}
			if item.StockLevel != tt.wantLevel {
				t.Errorf("StockLevel = %d, want %d", item.StockLevel, tt.wantLevel)
			}
			if item.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", item.Status, tt.wantStatus)
			}
		})
	}
}

func TestRecalculateRejectsInvalidState(t *testing.T) {
	item := InventoryItem{Stock: 10, MaxCapacity: 0}
	if err := item.Recalculate(); !errors.Is(err, ErrInvalidCapacity) {
		t.Errorf("zero capacity: got %v, want ErrInvalidCapacity", err)
	}
	item = InventoryItem{Stock: -5, MaxCapacity: 100}
	if err := item.Recalculate(); !errors.Is(err, ErrNegativeStock) {
		t.Errorf("negative stock: got %v, want ErrNegativeStock", err)
	}
}

func TestWeeklyUsageSet(t *testing.T) {
	var w WeeklyUsage
	for _, day := range []string{"sun", "mon", "tue", "wed", "thu", "fri"} {
		if !w.Set(day, 10) {
			t.Errorf("Set(%q) returned false", day)
		}
	}
	if w.Sun != 10 || w.Fri != 10 {
		t.Errorf("Set did not record usage: %+v", w)
	}
	if w.Set("sat", 10) {
		t.Error("Set(sat) should be rejected, the dyehouse week has no Saturday")
	}
	if w.Set("Monday", 10) {
		t.Error("Set(Monday) should be rejected, days are three-letter keys")
	}
}
