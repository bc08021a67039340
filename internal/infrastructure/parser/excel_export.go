package parser

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

const ordersSheet = "Orders"

type excelExporter struct{}

// NewOrderExporter buyurtmalarni xlsx ga chiqaruvchi
func NewOrderExporter() repository.OrderExporter {
	return &excelExporter{}
}

// ExportOrders har bir buyurtma qatori alohida satrda
func (e *excelExporter) ExportOrders(ctx context.Context, orders []entity.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []any{"Order ID", "Session", "Created", "Status", "Address", "Product ID", "Title", "Unit Price", "Quantity", "Line Total", "Order Total"}
	if err := f.SetSheetRow(ordersSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	rowNum := 2
	for _, order := range orders {
		for _, line := range order.Lines {
			cellName, err := excelize.CoordinatesToCellName(1, rowNum)
			if err != nil {
				return nil, err
			}
			row := []any{
				order.ID, order.SessionID, order.CreatedAt.Format("2006-01-02 15:04"), string(order.Status), order.Address,
				line.ProductID, line.Title, line.UnitPrice, line.Quantity, line.UnitPrice * float64(line.Quantity), order.Total,
			}
			if err := f.SetSheetRow(ordersSheet, cellName, &row); err != nil {
				return nil, fmt.Errorf("write row %d: %w", rowNum, err)
			}
			rowNum++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
