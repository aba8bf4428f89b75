package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/premiertex/dyehouse/internal/ops/service"
	"gorm.io/gorm"
)

type MachineHandler struct {
	svc *service.MachineService
}

func NewMachineHandler(svc *service.MachineService) *MachineHandler {
	return &MachineHandler{svc: svc}
}

func (h *MachineHandler) List(c *gin.Context) {
	machines, err := h.svc.List()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, machines)
}

func (h *MachineHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, stats)
}

func (h *MachineHandler) Get(c *gin.Context) {
	m, err := h.svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Machine not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, m)
}

func (h *MachineHandler) Create(c *gin.Context) {
	var req service.MachineCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Create(req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, m)
}

func (h *MachineHandler) Update(c *gin.Context) {
	var req service.MachineUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Update(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Machine not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, m)
}

func (h *MachineHandler) AssignJob(c *gin.Context) {
	var req service.AssignJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.AssignJob(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Machine not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, m)
}

func (h *MachineHandler) CompleteJob(c *gin.Context) {
	m, err := h.svc.CompleteJob(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Machine not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, m)
}

func (h *MachineHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Machine not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{"message": "Machine deleted successfully"})
}
