package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/victor823543/schedule-api/internal/dto"
	"github.com/victor823543/schedule-api/internal/service"
	"github.com/victor823543/schedule-api/pkg/response"
)

// EntityHandler 叶子实体模块 HTTP 处理器
type EntityHandler struct {
	entitySvc service.EntityService
}

// NewEntityHandler 创建 EntityHandler
func NewEntityHandler(entitySvc service.EntityService) *EntityHandler {
	return &EntityHandler{entitySvc: entitySvc}
}

// ListEntities 获取实体列表（category 为空时返回三类并集）
// GET /api/entities?category=
func (h *EntityHandler) ListEntities(c *gin.Context) {
	var req dto.ListEntitiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters.")
		return
	}

	entities, err := h.entitySvc.List(c.Request.Context(), req.Category)
	if err != nil {
		h.handleEntityError(c, err)
		return
	}

	response.OK(c, entities)
}

// CreateEntity 创建叶子实体并追加到课表成员列表
// POST /api/entities
func (h *EntityHandler) CreateEntity(c *gin.Context) {
	var req dto.CreateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid body.")
		return
	}

	result, err := h.entitySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleEntityError(c, err)
		return
	}

	response.Created(c, result)
}

// DeleteEntity 删除叶子实体并从课表成员列表摘除
// DELETE /api/entities?id=&category=&schedule=
func (h *EntityHandler) DeleteEntity(c *gin.Context) {
	var req dto.DeleteEntityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters.")
		return
	}

	if err := h.entitySvc.Delete(c.Request.Context(), &req); err != nil {
		h.handleEntityError(c, err)
		return
	}

	response.NoContent(c)
}

// handleEntityError 统一处理叶子实体模块业务错误
func (h *EntityHandler) handleEntityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCategory):
		response.BadRequest(c, "Invalid category.")
	case errors.Is(err, service.ErrInvalidSchedule):
		response.BadRequest(c, "Invalid schedule.")
	default:
		response.InternalError(c)
	}
}
