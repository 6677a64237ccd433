package api

import (
	"bytes"
	"fmt"
	"net/http"

	"expense-tracker/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	store ExpenseStore
}

// NewExportHandler 创建导出处理器
func NewExportHandler(store ExpenseStore) *ExportHandler {
	return &ExportHandler{store: store}
}

// Export 导出收支记录
// @Summary 导出收支记录
// @Description 以 CSV 或 Excel 文件导出记录，顺序与列表接口一致，可按类别筛选
// @Tags 导出
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "导出格式" Enums(csv,xlsx) default(csv)
// @Param category query string false "类别筛选"
// @Success 200 {file} file "导出文件"
// @Failure 400 {object} ErrorResponse "格式不支持"
// @Router /expenses/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", service.FormatCSV)
	if format != service.FormatCSV && format != service.FormatXLSX {
		BadRequest(c, "Unsupported export format, expected csv or xlsx")
		return
	}

	expenses, err := h.store.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	render := service.RenderCSV
	if format == service.FormatXLSX {
		render = service.RenderXLSX
	}

	buf := new(bytes.Buffer)
	if err := render(buf, expenses); err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=expenses.%s", format))
	c.Data(http.StatusOK, service.ContentType(format), buf.Bytes())
}
