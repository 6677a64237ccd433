package api

import (
	"errors"
	"net/http"

	"expense-tracker/repository"
	"expense-tracker/service"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler 收支记录处理器
type ExpenseHandler struct {
	store ExpenseStore
}

// NewExpenseHandler 创建收支记录处理器
func NewExpenseHandler(store ExpenseStore) *ExpenseHandler {
	return &ExpenseHandler{store: store}
}

// CreateExpenseRequest 创建收支记录请求（仅用于文档，实际按原始 JSON 校验）
type CreateExpenseRequest struct {
	Title    string  `json:"title" example:"Lunch"`
	Amount   float64 `json:"amount" example:"12.5"`
	Date     string  `json:"date" example:"2024-01-31"`
	Category string  `json:"category" example:"food"`
	Type     string  `json:"type,omitempty" enums:"expense,income" example:"expense"`
}

// List 获取收支记录列表
// @Summary 获取收支记录列表
// @Description 按日期倒序、同日按 id 倒序返回全部记录，可按类别精确筛选
// @Tags 收支记录
// @Produce json
// @Param category query string false "类别筛选"
// @Success 200 {array} models.Expense "获取成功"
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.store.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// Get 获取单条收支记录
// @Summary 获取单条收支记录
// @Tags 收支记录
// @Produce json
// @Param id path int true "记录ID"
// @Success 200 {object} models.Expense "获取成功"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	expense, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		NotFound(c, "Expense not found")
		return
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Create 创建收支记录
// @Summary 创建收支记录
// @Description title、amount、date、category 必填，type 缺省为 expense
// @Tags 收支记录
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "记录信息"
// @Success 201 {object} IDResponse "创建成功"
// @Failure 400 {object} ValidationErrorResponse "参数校验失败"
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	payload := decodePayload(c)
	if errs := service.ValidateExpense(payload, false); len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}

	expense, err := service.ExpenseFromPayload(payload)
	if err != nil {
		abortWithError(c, err)
		return
	}

	id, err := h.store.Create(c.Request.Context(), expense)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, IDResponse{ID: id})
}

// Update 更新收支记录
// @Summary 更新收支记录
// @Description 部分更新，只修改请求中提供的 title、amount、date、category、type；记录不存在时同样返回成功
// @Tags 收支记录
// @Accept json
// @Produce json
// @Param id path int true "记录ID"
// @Param request body CreateExpenseRequest true "需要修改的字段"
// @Success 200 {object} IDResponse "更新成功"
// @Failure 400 {object} ValidationErrorResponse "参数校验失败或没有可更新字段"
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	payload := decodePayload(c)
	if errs := service.ValidateExpense(payload, true); len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}

	patch, err := service.PatchFromPayload(payload)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := h.store.Update(c.Request.Context(), id, patch); err != nil {
		if errors.Is(err, repository.ErrNoFieldsToUpdate) {
			BadRequest(c, "No fields to update")
			return
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, IDResponse{ID: id})
}

// Delete 删除收支记录
// @Summary 删除收支记录
// @Description 物理删除，记录不存在时同样返回 204
// @Tags 收支记录
// @Param id path int true "记录ID"
// @Success 204 "删除成功"
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Categories 获取已使用的类别
// @Summary 获取类别列表
// @Description 返回记录中出现过的类别，去重并按名称排序
// @Tags 收支记录
// @Produce json
// @Success 200 {array} string "获取成功"
// @Router /categories [get]
func (h *ExpenseHandler) Categories(c *gin.Context) {
	categories, err := h.store.Categories(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
