package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/premiertex/dyehouse/internal/ops/testutil"
)

func createSchedule(t *testing.T, router *gin.Engine, date, timeOfDay, machine string) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/schedules", map[string]interface{}{
		"date":     date,
		"time":     timeOfDay,
		"machine":  machine,
		"party":    "LUX",
		"color":    "Navy Blue",
		"lotNo":    "2401",
		"quantity": "450 kg",
		"duration": "6 hours",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create schedule status = %d: %s", w.Code, w.Body.String())
	}
	return testutil.Data(t, w)
}

func TestScheduleDefaults(t *testing.T) {
	router, _ := newTestEnv(t)

	created := createSchedule(t, router, "2025-12-15", "08:00", "SF-01")
	if created["priority"] != "medium" {
		t.Errorf("default priority = %v, want medium", created["priority"])
	}
	if created["status"] != "scheduled" {
		t.Errorf("default status = %v, want scheduled", created["status"])
	}
}

func TestScheduleListOrder(t *testing.T) {
	router, _ := newTestEnv(t)

	createSchedule(t, router, "2025-12-16", "08:00", "SF-01")
	createSchedule(t, router, "2025-12-15", "09:00", "SF-02")
	createSchedule(t, router, "2025-12-15", "08:00", "SF-01")

	w := testutil.DoRequest(router, http.MethodGet, "/api/v1/schedules", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	items := resp["data"].([]interface{})
	if len(items) != 3 {
		t.Fatalf("got %d schedules", len(items))
	}
	want := []struct{ date, timeOfDay string }{
		{"2025-12-15", "08:00"},
		{"2025-12-15", "09:00"},
		{"2025-12-16", "08:00"},
	}
	for i, raw := range items {
		s := raw.(map[string]interface{})
		if s["date"] != want[i].date || s["time"] != want[i].timeOfDay {
			t.Errorf("position %d = %v %v, want %v %v", i, s["date"], s["time"], want[i].date, want[i].timeOfDay)
		}
	}
}

func TestScheduleWeekView(t *testing.T) {
	router, _ := newTestEnv(t)

	createSchedule(t, router, "2025-12-15", "08:00", "SF-01") // day 1
	createSchedule(t, router, "2025-12-21", "08:00", "SF-02") // day 7, included
	createSchedule(t, router, "2025-12-22", "08:00", "SF-03") // day 8, excluded
	createSchedule(t, router, "2025-12-14", "08:00", "SF-04") // day before, excluded

	w := testutil.DoRequest(router, http.MethodGet, "/api/v1/schedules/week/2025-12-15", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("week status = %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	items := resp["data"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("week view returned %d schedules, want 2", len(items))
	}
	first := items[0].(map[string]interface{})
	last := items[1].(map[string]interface{})
	if first["date"] != "2025-12-15" || last["date"] != "2025-12-21" {
		t.Errorf("week span wrong: %v .. %v", first["date"], last["date"])
	}
}

func TestScheduleWeekViewBadDate(t *testing.T) {
	router, _ := newTestEnv(t)

	w := testutil.DoRequest(router, http.MethodGet, "/api/v1/schedules/week/15-12-2025", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date = %d, want 400", w.Code)
	}
}

func TestScheduleFilters(t *testing.T) {
	router, _ := newTestEnv(t)

	createSchedule(t, router, "2025-12-15", "08:00", "SF-01")
	createSchedule(t, router, "2025-12-16", "08:00", "SF-02")

	w := testutil.DoRequest(router, http.MethodGet, "/api/v1/schedules?date=2025-12-15", nil)
	resp := testutil.ParseResponse(w)
	items := resp["data"].([]interface{})
	if len(items) != 1 {
		t.Errorf("date filter returned %d schedules, want 1", len(items))
	}
}

func TestScheduleUpdateAndValidation(t *testing.T) {
	router, _ := newTestEnv(t)

	created := createSchedule(t, router, "2025-12-15", "08:00", "SF-01")
	id := created["id"].(string)

	w := testutil.DoRequest(router, http.MethodPut, "/api/v1/schedules/"+id, map[string]interface{}{
		"status":   "in-progress",
		"priority": "high",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}
	updated := testutil.Data(t, w)
	if updated["status"] != "in-progress" || updated["priority"] != "high" {
		t.Errorf("update not applied: %v", updated)
	}
	if updated["machine"] != "SF-01" {
		t.Errorf("partial update clobbered machine: %v", updated["machine"])
	}

	w = testutil.DoRequest(router, http.MethodPut, "/api/v1/schedules/"+id, map[string]interface{}{
		"priority": "urgent",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown priority = %d, want 400", w.Code)
	}

	w = testutil.DoRequest(router, http.MethodPut, "/api/v1/schedules/missing", map[string]interface{}{
		"priority": "low",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("update missing schedule = %d, want 404", w.Code)
	}
}
