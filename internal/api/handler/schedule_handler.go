package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/victor823543/schedule-api/internal/dto"
	"github.com/victor823543/schedule-api/internal/service"
	"github.com/victor823543/schedule-api/pkg/response"
)

// ScheduleHandler 课表模块 HTTP 处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// ListSchedules 获取课表列表
// GET /api/schedules
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.scheduleSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, schedules)
}

// GetSchedule 获取课表详情（成员列表已解析）
// GET /api/schedules/:id
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id := c.Param("id")

	schedule, err := h.scheduleSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, schedule)
}

// CreateSchedule 创建课表
// POST /api/schedules
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid body.")
		return
	}

	result, err := h.scheduleSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// DeleteSchedule 删除课表（id 不存在时也返回成功）
// DELETE /api/schedules/:id
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id := c.Param("id")

	if err := h.scheduleSvc.Delete(c.Request.Context(), id); err != nil {
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}

// handleScheduleError 统一处理课表模块业务错误
func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleNotFound):
		response.NotFound(c, "Schedule not found.")
	default:
		response.InternalError(c)
	}
}
