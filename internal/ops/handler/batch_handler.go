package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/premiertex/dyehouse/internal/ops/repository"
	"github.com/premiertex/dyehouse/internal/ops/service"
	"gorm.io/gorm"
)

type BatchHandler struct {
	svc *service.BatchService
}

func NewBatchHandler(svc *service.BatchService) *BatchHandler {
	return &BatchHandler{svc: svc}
}

func (h *BatchHandler) List(c *gin.Context) {
	params := repository.BatchListParams{
		Status:    c.Query("status"),
		Party:     c.Query("party"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	batches, err := h.svc.List(params)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, batches)
}

func (h *BatchHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, stats)
}

func (h *BatchHandler) Get(c *gin.Context) {
	b, err := h.svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Batch not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, b)
}

func (h *BatchHandler) Create(c *gin.Context) {
	var req service.BatchCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	b, err := h.svc.Create(req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, b)
}

func (h *BatchHandler) Update(c *gin.Context) {
	var req service.BatchUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	b, err := h.svc.Update(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Batch not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, b)
}

func (h *BatchHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Batch not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{"message": "Batch deleted successfully"})
}
