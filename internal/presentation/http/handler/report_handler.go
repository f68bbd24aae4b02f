package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zakirya592/rk-co-pos-sub002/internal/application/service"
	"github.com/zakirya592/rk-co-pos-sub002/internal/presentation/http/dto/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles report export HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ExportSales streams the filtered sales as an xlsx workbook. The filter
// and search parameters match the sales list endpoint.
func (h *ReportHandler) ExportSales(c *gin.Context) {
	buf, err := h.reportService.ExportSales(c.Request.Context(), &service.SalesReportInput{
		Filter: parseSaleFilter(c),
		Search: c.Query("search"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("sales-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
