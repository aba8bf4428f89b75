package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/premiertex/dyehouse/internal/ops/service"
)

// Handlers is the HTTP handler collection for the dashboard API.
type Handlers struct {
	Machine    *MachineHandler
	Batch      *BatchHandler
	Schedule   *ScheduleHandler
	Inventory  *InventoryHandler
	Inspection *InspectionHandler
	Alert      *AlertHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Machine:    NewMachineHandler(services.Machine),
		Batch:      NewBatchHandler(services.Batch),
		Schedule:   NewScheduleHandler(services.Schedule),
		Inventory:  NewInventoryHandler(services.Inventory),
		Inspection: NewInspectionHandler(services.Inspection),
		Alert:      NewAlertHandler(services.Alert),
	}
}

// RegisterRoutes mounts the full API surface under /api/v1 plus the root
// service-description document and a 404 fallback.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Premier Textile Dyers API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"batches":     "/api/v1/batches",
				"schedules":   "/api/v1/schedules",
				"inventory":   "/api/v1/inventory",
				"machines":    "/api/v1/machines",
				"inspections": "/api/v1/inspections",
				"alerts":      "/api/v1/alerts",
			},
		})
	})

	v1 := r.Group("/api/v1")
	{
		machines := v1.Group("/machines")
		{
			machines.GET("", h.Machine.List)
			machines.GET("/stats", h.Machine.Stats)
			machines.GET("/:id", h.Machine.Get)
			machines.POST("", h.Machine.Create)
			machines.PUT("/:id", h.Machine.Update)
			machines.POST("/:id/job", h.Machine.AssignJob)
			machines.PUT("/:id/complete", h.Machine.CompleteJob)
			machines.DELETE("/:id", h.Machine.Delete)
		}

		batches := v1.Group("/batches")
		{
			batches.GET("", h.Batch.List)
			batches.GET("/stats", h.Batch.Stats)
			batches.GET("/:id", h.Batch.Get)
			batches.POST("", h.Batch.Create)
			batches.PUT("/:id", h.Batch.Update)
			batches.DELETE("/:id", h.Batch.Delete)
		}

		schedules := v1.Group("/schedules")
		{
			schedules.GET("", h.Schedule.List)
			schedules.GET("/week/:date", h.Schedule.Week)
			schedules.GET("/:id", h.Schedule.Get)
			schedules.POST("", h.Schedule.Create)
			schedules.PUT("/:id", h.Schedule.Update)
			schedules.DELETE("/:id", h.Schedule.Delete)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.GET("", h.Inventory.List)
			inventory.GET("/alerts", h.Inventory.LowStock)
			inventory.GET("/:id", h.Inventory.Get)
			inventory.POST("", h.Inventory.Create)
			inventory.PUT("/:id", h.Inventory.Update)
			inventory.POST("/:id/usage", h.Inventory.RecordUsage)
			inventory.DELETE("/:id", h.Inventory.Delete)
		}

		inspections := v1.Group("/inspections")
		{
			inspections.GET("", h.Inspection.List)
			inspections.GET("/stats", h.Inspection.Stats)
			inspections.GET("/:id", h.Inspection.Get)
			inspections.POST("", h.Inspection.Create)
			inspections.PUT("/:id", h.Inspection.Update)
			inspections.DELETE("/:id", h.Inspection.Delete)
		}

		alerts := v1.Group("/alerts")
		{
			alerts.GET("", h.Alert.List)
			alerts.GET("/:id", h.Alert.Get)
			alerts.POST("", h.Alert.Create)
			alerts.PUT("/:id/read", h.Alert.MarkRead)
			alerts.POST("/generate", h.Alert.Generate)
			alerts.DELETE("/:id", h.Alert.Delete)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, Response{Code: 40400, Message: "Route not found"})
	})
}

// === response helpers ===

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Code: 0, Message: "success", Data: data})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{Code: 40000, Message: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{Code: 40400, Message: message})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Response{Code: 50000, Message: message})
}
