package handler

import (
	"net/http"
	"testing"

	"github.com/premiertex/dyehouse/internal/ops/testutil"
)

func TestInventoryCreateDerivesStatus(t *testing.T) {
	router, _ := newTestEnv(t)

	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/inventory", map[string]interface{}{
		"name":        "DEEP BLACK",
		"category":    "Dye",
		"stock":       50,
		"maxCapacity": 200,
		// client-supplied derived fields must be ignored
		"status":     "ok",
		"stockLevel": 100,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	item := testutil.Data(t, w)
	if item["stockLevel"] != float64(25) {
		t.Errorf("stockLevel = %v, want 25", item["stockLevel"])
	}
	if item["status"] != "low" {
		t.Errorf("status = %v, want low", item["status"])
	}
}

func TestInventoryUpdateRederives(t *testing.T) {
	router, db := newTestEnv(t)

	item := testutil.SeedInventoryItem(t, db, "DEEP BLACK", "Dye", 50, 200)

	w := testutil.DoRequest(router, http.MethodPut, "/api/v1/inventory/"+item.ID, map[string]interface{}{
		"stock": 30,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}
	updated := testutil.Data(t, w)
	if updated["stockLevel"] != float64(15) {
		t.Errorf("stockLevel = %v, want 15", updated["stockLevel"])
	}
	if updated["status"] != "critical" {
		t.Errorf("status = %v, want critical", updated["status"])
	}
	if updated["name"] != "DEEP BLACK" {
		t.Errorf("partial update clobbered name: %v", updated["name"])
	}
}

func TestInventoryValidation(t *testing.T) {
	router, _ := newTestEnv(t)

	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/inventory", map[string]interface{}{
		"name":     "Mystery Powder",
		"category": "Solvent",
		"stock":    10,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown category = %d, want 400", w.Code)
	}

	w = testutil.DoRequest(router, http.MethodPost, "/api/v1/inventory", map[string]interface{}{
		"name":        "DEEP BLACK",
		"category":    "Dye",
		"stock":       10,
		"maxCapacity": 0,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("zero capacity = %d, want 400", w.Code)
	}
}

func TestInventoryRecordUsage(t *testing.T) {
	router, db := newTestEnv(t)

	item := testutil.SeedInventoryItem(t, db, "RED W3R", "Dye", 148, 500)

	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/inventory/"+item.ID+"/usage", map[string]interface{}{
		"day":    "mon",
		"amount": 48,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("usage status = %d: %s", w.Code, w.Body.String())
	}
	updated := testutil.Data(t, w)
	if updated["stock"] != float64(100) {
		t.Errorf("stock = %v, want 100", updated["stock"])
	}
	usage := updated["weeklyUsage"].(map[string]interface{})
	if usage["mon"] != float64(48) {
		t.Errorf("weeklyUsage.mon = %v, want 48", usage["mon"])
	}
	if updated["stockLevel"] != float64(20) || updated["status"] != "critical" {
		t.Errorf("derived fields not refreshed: level=%v status=%v", updated["stockLevel"], updated["status"])
	}
}

func TestInventoryRecordUsageInvalidDay(t *testing.T) {
	router, db := newTestEnv(t)

	item := testutil.SeedInventoryItem(t, db, "RED W3R", "Dye", 148, 500)

	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/inventory/"+item.ID+"/usage", map[string]interface{}{
		"day":    "sat",
		"amount": 10,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("saturday usage = %d, want 400", w.Code)
	}
}

func TestInventoryRecordUsageOverdraw(t *testing.T) {
	router, db := newTestEnv(t)

	item := testutil.SeedInventoryItem(t, db, "BLUE RR", "Dye", 19, 100)

	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/inventory/"+item.ID+"/usage", map[string]interface{}{
		"day":    "tue",
		"amount": 30,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("overdraw = %d, want 400: %s", w.Code, w.Body.String())
	}

	// the failed draw must not have touched the stored record
	w = testutil.DoRequest(router, http.MethodGet, "/api/v1/inventory/"+item.ID, nil)
	got := testutil.Data(t, w)
	if got["stock"] != float64(19) {
		t.Errorf("stock after failed draw = %v, want 19", got["stock"])
	}
}

func TestInventoryListAndFilter(t *testing.T) {
	router, db := newTestEnv(t)

	testutil.SeedInventoryItem(t, db, "Wetting Oil", "Chemical", 288, 400)
	testutil.SeedInventoryItem(t, db, "BLACK B", "Dye", 617, 1000)
	testutil.SeedInventoryItem(t, db, "RED W3R", "Dye", 148, 500)

	w := testutil.DoRequest(router, http.MethodGet, "/api/v1/inventory", nil)
	resp := testutil.ParseResponse(w)
	items := resp["data"].([]interface{})
	if len(items) != 3 {
		t.Fatalf("got %d items", len(items))
	}
	// name ascending
	first := items[0].(map[string]interface{})
	if first["name"] != "BLACK B" {
		t.Errorf("first item = %v, want BLACK B", first["name"])
	}

	w = testutil.DoRequest(router, http.MethodGet, "/api/v1/inventory?category=Dye", nil)
	resp = testutil.ParseResponse(w)
	dyes := resp["data"].([]interface{})
	if len(dyes) != 2 {
		t.Errorf("category filter returned %d items, want 2", len(dyes))
	}
}

func TestInventoryLowStockListing(t *testing.T) {
	router, db := newTestEnv(t)

	testutil.SeedInventoryItem(t, db, "BLACK B", "Dye", 617, 1000)   // 62% ok
	testutil.SeedInventoryItem(t, db, "DEEP BLACK", "Dye", 50, 200)  // 25% low
	testutil.SeedInventoryItem(t, db, "YELLOW ME49L", "Dye", 5, 50)  // 10% critical
	testutil.SeedInventoryItem(t, db, "BLUE RR", "Dye", 19, 100)     // 19% critical
	testutil.SeedInventoryItem(t, db, "Softner Cakes", "Chemical", 75, 100) // 75% ok

	w := testutil.DoRequest(router, http.MethodGet, "/api/v1/inventory/alerts", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("low stock status = %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	items := resp["data"].([]interface{})
	if len(items) != 3 {
		t.Fatalf("got %d low items, want 3", len(items))
	}
	// emptiest first
	want := []string{"YELLOW ME49L", "BLUE RR", "DEEP BLACK"}
	for i, raw := range items {
		item := raw.(map[string]interface{})
		if item["name"] != want[i] {
			t.Errorf("position %d = %v, want %s", i, item["name"], want[i])
		}
	}
}
