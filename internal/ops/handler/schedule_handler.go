package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/premiertex/dyehouse/internal/ops/repository"
	"github.com/premiertex/dyehouse/internal/ops/service"
	"gorm.io/gorm"
)

type ScheduleHandler struct {
	svc *service.ScheduleService
}

func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func (h *ScheduleHandler) List(c *gin.Context) {
	params := repository.ScheduleListParams{
		Date:   c.Query("date"),
		Status: c.Query("status"),
	}
	schedules, err := h.svc.List(params)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, schedules)
}

// Week serves the calendar view: seven consecutive days from :date.
func (h *ScheduleHandler) Week(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		BadRequest(c, "invalid date, expected YYYY-MM-DD")
		return
	}
	schedules, err := h.svc.WeekView(start)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, schedules)
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	s, err := h.svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Schedule not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, s)
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req service.ScheduleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	s, err := h.svc.Create(req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, s)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	var req service.ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	s, err := h.svc.Update(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Schedule not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, s)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Schedule not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{"message": "Schedule deleted successfully"})
}
