package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/premiertex/dyehouse/internal/ops/service"
	"gorm.io/gorm"
)

type InventoryHandler struct {
	svc *service.InventoryService
}

func NewInventoryHandler(svc *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Query("category"))
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, items)
}

// LowStock lists items in the low or critical tier, emptiest first.
func (h *InventoryHandler) LowStock(c *gin.Context) {
	items, err := h.svc.LowStock()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, items)
}

func (h *InventoryHandler) Get(c *gin.Context) {
	item, err := h.svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Item not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, item)
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req service.InventoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.Create(req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, item)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	var req service.InventoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.Update(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Item not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, item)
}

func (h *InventoryHandler) RecordUsage(c *gin.Context) {
	var req service.UsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.RecordUsage(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Item not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, item)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Item not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{"message": "Item deleted successfully"})
}
