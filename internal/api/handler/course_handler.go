package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/victor823543/schedule-api/internal/dto"
	"github.com/victor823543/schedule-api/internal/service"
	"github.com/victor823543/schedule-api/pkg/response"
)

// CourseHandler 课程模块 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// ListCourses 获取课程列表
// GET /api/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, courses)
}

// CreateCourse 创建课程（带 schedule 时同步维护课表成员列表）
// POST /api/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid body.")
		return
	}

	result, err := h.courseSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.Created(c, result)
}

// DeleteCourse 删除课程
// DELETE /api/courses?id=[&schedule=]
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	var req dto.DeleteCourseRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters.")
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), req.ID, req.Schedule); err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.NoContent(c)
}

// DeleteCourses 批量删除课程
// DELETE /api/courses/delete-many
func (h *CourseHandler) DeleteCourses(c *gin.Context) {
	var req dto.DeleteManyCoursesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid body.")
		return
	}

	if err := h.courseSvc.DeleteMany(c.Request.Context(), req.IDs); err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.NoContent(c)
}

// handleCourseError 统一处理课程模块业务错误
func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidSchedule):
		response.BadRequest(c, "Invalid schedule.")
	default:
		response.InternalError(c)
	}
}
