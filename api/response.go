package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 单条错误信息
type ErrorResponse struct {
	Error string `json:"error" example:"No fields to update"`
}

// ValidationErrorResponse 字段校验错误，字段名 -> 错误信息
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// IDResponse 返回记录 id
type IDResponse struct {
	ID uint64 `json:"id" example:"1"`
}

// StatusResponse 健康检查
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// ValidationFailed 400 字段校验失败
func ValidationFailed(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
}

// abortWithError 将存储层错误交给错误处理中间件统一输出
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
