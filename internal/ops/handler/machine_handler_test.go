package handler

import (
	"net/http"
	"testing"

	"github.com/premiertex/dyehouse/internal/ops/testutil"
)

func TestMachineCRUD(t *testing.T) {
	router, _ := newTestEnv(t)

	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/machines", map[string]interface{}{
		"machineId": "SF-01",
		"name":      "Softflow 1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	created := testutil.Data(t, w)
	id := created["id"].(string)
	if created["status"] != "idle" {
		t.Errorf("default status = %v, want idle", created["status"])
	}

	w = testutil.DoRequest(router, http.MethodGet, "/api/v1/machines/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	got := testutil.Data(t, w)
	if got["machineId"] != "SF-01" || got["name"] != "Softflow 1" {
		t.Errorf("got %v", got)
	}

	w = testutil.DoRequest(router, http.MethodPut, "/api/v1/machines/"+id, map[string]interface{}{
		"status":     "maintenance",
		"efficiency": 0,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}
	updated := testutil.Data(t, w)
	if updated["status"] != "maintenance" {
		t.Errorf("status = %v, want maintenance", updated["status"])
	}
	if updated["name"] != "Softflow 1" {
		t.Errorf("partial update clobbered name: %v", updated["name"])
	}

	w = testutil.DoRequest(router, http.MethodDelete, "/api/v1/machines/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = testutil.DoRequest(router, http.MethodGet, "/api/v1/machines/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", w.Code)
	}
	w = testutil.DoRequest(router, http.MethodDelete, "/api/v1/machines/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("double delete = %d, want 404", w.Code)
	}
}

func TestMachineListOrder(t *testing.T) {
	router, db := newTestEnv(t)

	testutil.SeedMachine(t, db, "SF-03", "Softflow 3", "idle", 0)
	testutil.SeedMachine(t, db, "SF-01", "Softflow 1", "idle", 0)
	testutil.SeedMachine(t, db, "SF-02", "Softflow 2", "idle", 0)

	w := testutil.DoRequest(router, http.MethodGet, "/api/v1/machines", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	items := resp["data"].([]interface{})
	if len(items) != 3 {
		t.Fatalf("got %d machines", len(items))
	}
	want := []string{"SF-01", "SF-02", "SF-03"}
	for i, raw := range items {
		m := raw.(map[string]interface{})
		if m["machineId"] != want[i] {
			t.Errorf("position %d = %v, want %s", i, m["machineId"], want[i])
		}
	}
}

func TestMachineValidation(t *testing.T) {
	router, _ := newTestEnv(t)

	// missing required name
	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/machines", map[string]interface{}{
		"machineId": "SF-01",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing name = %d, want 400", w.Code)
	}

	// unknown status
	w = testutil.DoRequest(router, http.MethodPost, "/api/v1/machines", map[string]interface{}{
		"machineId": "SF-01",
		"name":      "Softflow 1",
		"status":    "broken",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad status = %d, want 400", w.Code)
	}

	// efficiency out of range
	w = testutil.DoRequest(router, http.MethodPost, "/api/v1/machines", map[string]interface{}{
		"machineId":  "SF-01",
		"name":       "Softflow 1",
		"efficiency": 120,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("efficiency 120 = %d, want 400", w.Code)
	}
}

func TestMachineJobLifecycle(t *testing.T) {
	router, db := newTestEnv(t)

	m := testutil.SeedMachine(t, db, "SF-01", "Softflow 1", "idle", 0)

	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/machines/"+m.ID+"/job", map[string]interface{}{
		"party":    "LUX",
		"color":    "Navy Blue",
		"lotNo":    "2401",
		"quantity": "450 kg",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("assign status = %d: %s", w.Code, w.Body.String())
	}
	running := testutil.Data(t, w)
	if running["status"] != "running" {
		t.Errorf("status = %v, want running", running["status"])
	}
	if running["stage"] != "TD Load" {
		t.Errorf("stage = %v, want default TD Load", running["stage"])
	}
	if running["efficiency"] != float64(0) {
		t.Errorf("efficiency = %v, want 0 on a fresh job", running["efficiency"])
	}
	if running["runtime"] != "Just started" {
		t.Errorf("runtime = %v", running["runtime"])
	}
	if running["startTime"] == nil {
		t.Error("startTime not set")
	}

	// incomplete job payload is rejected
	w = testutil.DoRequest(router, http.MethodPost, "/api/v1/machines/"+m.ID+"/job", map[string]interface{}{
		"party": "LUX",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("partial job = %d, want 400", w.Code)
	}

	w = testutil.DoRequest(router, http.MethodPut, "/api/v1/machines/"+m.ID+"/complete", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("complete status = %d: %s", w.Code, w.Body.String())
	}
	idle := testutil.Data(t, w)
	if idle["status"] != "idle" {
		t.Errorf("status = %v, want idle", idle["status"])
	}
	if idle["party"] != "" || idle["color"] != "" || idle["lotNo"] != "" || idle["quantity"] != "" {
		t.Errorf("job fields not cleared: %v", idle)
	}
	if idle["startTime"] != nil {
		t.Errorf("startTime = %v, want null", idle["startTime"])
	}

	w = testutil.DoRequest(router, http.MethodPost, "/api/v1/machines/missing/job", map[string]interface{}{
		"party":    "LUX",
		"color":    "Navy",
		"lotNo":    "1",
		"quantity": "1 kg",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("assign to missing machine = %d, want 404", w.Code)
	}
}

func TestMachineStatsEndpoint(t *testing.T) {
	router, db := newTestEnv(t)

	run1 := testutil.SeedMachine(t, db, "SF-01", "Softflow 1", "running", 94)
	run1.Quantity = "331 kg"
	db.Save(run1)
	run2 := testutil.SeedMachine(t, db, "SF-02", "Softflow 2", "running", 88)
	run2.Quantity = "504 kg"
	db.Save(run2)
	testutil.SeedMachine(t, db, "SF-06", "Softflow 6", "idle", 0)
	testutil.SeedMachine(t, db, "SF-08", "Softflow 8", "maintenance", 0)

	w := testutil.DoRequest(router, http.MethodGet, "/api/v1/machines/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d: %s", w.Code, w.Body.String())
	}
	stats := testutil.Data(t, w)
	if stats["total"] != float64(4) || stats["running"] != float64(2) ||
		stats["idle"] != float64(1) || stats["maintenance"] != float64(1) {
		t.Errorf("counts = %v", stats)
	}
	if stats["avgEfficiency"] != float64(91) {
		t.Errorf("avgEfficiency = %v, want 91", stats["avgEfficiency"])
	}
	if stats["totalProduction"] != float64(835) {
		t.Errorf("totalProduction = %v, want 835", stats["totalProduction"])
	}
}
