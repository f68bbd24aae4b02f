package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/finance"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
)

// ReportService exports filtered sales as spreadsheet workbooks
type ReportService struct {
	saleRepo repository.SaleRepository
}

// NewReportService creates a new report service
func NewReportService(saleRepo repository.SaleRepository) *ReportService {
	return &ReportService{saleRepo: saleRepo}
}

// SalesReportInput bundles the query filter with the free-text term applied
// after the query, the same two-layer filtering the sales list uses.
type SalesReportInput struct {
	Filter *repository.SaleFilter
	Search string
}

var salesReportHeaders = []string{
	"Invoice No", "Customer", "Date", "Total", "Discount", "Tax",
	"Grand Total", "Paid", "Due", "Status", "Method",
}

// ExportSales renders every sale matching the filter into an xlsx workbook
// and returns the encoded file.
func (s *ReportService) ExportSales(ctx context.Context, input *SalesReportInput) (*bytes.Buffer, error) {
	sales, err := s.saleRepo.ListAll(ctx, input.Filter)
	if err != nil {
		return nil, err
	}

	sales = finance.Filter(sales, input.Search, func(sale entity.Sale) []string {
		return []string{sale.InvoiceNo, sale.CustomerName()}
	})

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sales"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range salesReportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, sale := range sales {
		row := i + 2
		values := []interface{}{
			sale.InvoiceNo,
			sale.CustomerName(),
			sale.CreatedAt.Format("2006-01-02 15:04"),
			sale.TotalAmount.InexactFloat64(),
			sale.Discount.InexactFloat64(),
			sale.Tax.InexactFloat64(),
			sale.GrandTotal.InexactFloat64(),
			sale.PaidAmount.InexactFloat64(),
			sale.DueAmount.InexactFloat64(),
			string(sale.PaymentStatus),
			string(sale.PaymentMethod),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return &buf, nil
}
