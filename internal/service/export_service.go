package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"dbstarter/internal/repository"
)

// ExportService renders the inventory as a spreadsheet.
//
// The file is returned as a bytes.Buffer; the handler sets the HTTP headers
// and writes it out.
type ExportService interface {
	// ExportProducts returns the full product list as an .xlsx workbook
	// plus a suggested filename.
	ExportProducts(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportProducts(ctx context.Context) (*bytes.Buffer, string, error) {
	products, err := s.repo.Product.List(ctx, "")
	if err != nil {
		s.logger.Error("list products failed", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventory"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Name", "Quantity", "Price", "Value"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	var totalValue float64
	for row, p := range products {
		values := []interface{}{p.ID, p.Name, p.Quantity, p.Price, float64(p.Quantity) * p.Price}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
		totalValue += float64(p.Quantity) * p.Price
	}

	// total row under the table
	totalRow := len(products) + 2
	cell, _ := excelize.CoordinatesToCellName(4, totalRow)
	f.SetCellValue(sheet, cell, "Total")
	cell, _ = excelize.CoordinatesToCellName(5, totalRow)
	f.SetCellValue(sheet, cell, totalValue)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write workbook failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("inventory-%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}
