package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"expense-tracker/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// 导出格式
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var exportHeaders = []string{"ID", "Title", "Amount", "Date", "Category", "Type"}

// ContentType 导出格式对应的 MIME 类型
func ContentType(format string) string {
	switch format {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv; charset=utf-8"
	}
}

// RenderCSV 将记录写为 CSV，首行为表头
func RenderCSV(w io.Writer, expenses []models.Expense) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeaders); err != nil {
		return err
	}
	for _, e := range expenses {
		row := []string{
			strconv.FormatUint(e.ID, 10),
			e.Title,
			e.Amount.StringFixed(2),
			e.Date.String(),
			e.Category,
			string(e.Type),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// RenderXLSX 将记录写为 Excel 工作簿，末行为收入、支出合计
func RenderXLSX(w io.Writer, expenses []models.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Expenses"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	_ = f.SetColWidth(sheet, "B", "B", 30)
	_ = f.SetColWidth(sheet, "D", "E", 14)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "F1", headerStyle); err != nil {
		return err
	}

	income, expense := decimal.Zero, decimal.Zero
	for i, e := range expenses {
		row := i + 2
		amount, _ := e.Amount.Float64()
		values := []interface{}{e.ID, e.Title, amount, e.Date.String(), e.Category, string(e.Type)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		if e.Type == models.TypeIncome {
			income = income.Add(e.Amount)
		} else {
			expense = expense.Add(e.Amount)
		}
	}

	totalRow := len(expenses) + 2
	incomeTotal, _ := income.Float64()
	expenseTotal, _ := expense.Float64()
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Income")
	_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), incomeTotal)
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow+1), "Expense")
	_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow+1), expenseTotal)

	return f.Write(w)
}
