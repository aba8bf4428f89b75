package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/premiertex/dyehouse/internal/ops/service"
	"gorm.io/gorm"
)

type InspectionHandler struct {
	svc *service.InspectionService
}

func NewInspectionHandler(svc *service.InspectionService) *InspectionHandler {
	return &InspectionHandler{svc: svc}
}

func (h *InspectionHandler) List(c *gin.Context) {
	inspections, err := h.svc.List(c.Query("status"))
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, inspections)
}

func (h *InspectionHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, stats)
}

func (h *InspectionHandler) Get(c *gin.Context) {
	i, err := h.svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Inspection not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, i)
}

func (h *InspectionHandler) Create(c *gin.Context) {
	var req service.InspectionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	i, err := h.svc.Create(req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, i)
}

func (h *InspectionHandler) Update(c *gin.Context) {
	var req service.InspectionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	i, err := h.svc.Update(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Inspection not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, i)
}

func (h *InspectionHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Inspection not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{"message": "Inspection deleted successfully"})
}
