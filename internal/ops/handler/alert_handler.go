package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/premiertex/dyehouse/internal/ops/repository"
	"github.com/premiertex/dyehouse/internal/ops/service"
	"gorm.io/gorm"
)

type AlertHandler struct {
	svc *service.AlertService
}

func NewAlertHandler(svc *service.AlertService) *AlertHandler {
	return &AlertHandler{svc: svc}
}

func (h *AlertHandler) List(c *gin.Context) {
	params := repository.AlertListParams{
		Type:     c.Query("type"),
		Category: c.Query("category"),
	}
	if read := c.Query("read"); read != "" {
		v := read == "true"
		params.Read = &v
	}
	alerts, err := h.svc.List(params)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, alerts)
}

func (h *AlertHandler) Get(c *gin.Context) {
	a, err := h.svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Alert not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, a)
}

func (h *AlertHandler) Create(c *gin.Context) {
	var req service.AlertCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	a, err := h.svc.Create(req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, a)
}

func (h *AlertHandler) MarkRead(c *gin.Context) {
	a, err := h.svc.MarkRead(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Alert not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, a)
}

// Generate runs the threshold scan and reports the newly created alerts.
func (h *AlertHandler) Generate(c *gin.Context) {
	alerts, err := h.svc.Generate()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{
		"message": fmt.Sprintf("Generated %d new alerts", len(alerts)),
		"alerts":  alerts,
	})
}

func (h *AlertHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Alert not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{"message": "Alert deleted successfully"})
}
