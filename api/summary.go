package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SummaryHandler 收支汇总处理器
type SummaryHandler struct {
	summarizer Summarizer
}

// NewSummaryHandler 创建汇总处理器
func NewSummaryHandler(summarizer Summarizer) *SummaryHandler {
	return &SummaryHandler{summarizer: summarizer}
}

// Summary 获取收支汇总
// @Summary 获取收支汇总
// @Description 收入合计、支出合计、余额（收入 - 支出）以及按类别的支出合计，每次请求实时计算
// @Tags 统计
// @Produce json
// @Success 200 {object} models.Summary "获取成功"
// @Router /summary [get]
func (h *SummaryHandler) Summary(c *gin.Context) {
	summary, err := h.summarizer.Summarize(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
