package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/premiertex/dyehouse/internal/ops/repository"
	"github.com/premiertex/dyehouse/internal/ops/service"
	"github.com/premiertex/dyehouse/internal/ops/testutil"
	"gorm.io/gorm"
)

func newTestEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)
	handlers := NewHandlers(services)

	router := testutil.SetupRouter()
	RegisterRoutes(router, handlers)
	return router, db
}

func TestRootDocument(t *testing.T) {
	router, _ := newTestEnv(t)

	w := testutil.DoRequest(router, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := testutil.ParseResponse(w)
	if resp["message"] != "Premier Textile Dyers API" {
		t.Errorf("message = %v", resp["message"])
	}
	endpoints, ok := resp["endpoints"].(map[string]interface{})
	if !ok {
		t.Fatalf("no endpoints map in %s", w.Body.String())
	}
	for _, key := range []string{"machines", "batches", "schedules", "inventory", "inspections", "alerts"} {
		if _, ok := endpoints[key]; !ok {
			t.Errorf("endpoints missing %q", key)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newTestEnv(t)

	w := testutil.DoRequest(router, http.MethodGet, "/api/v1/nonsense", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	resp := testutil.ParseResponse(w)
	if resp["code"] != float64(40400) {
		t.Errorf("code = %v, want 40400", resp["code"])
	}
}
