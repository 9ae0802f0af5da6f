package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"delivery-admin/internal/service/board"
	"delivery-admin/internal/storage"
)

const (
	ordersSheet      = "Orders"
	assignmentsSheet = "Assignments"
	timeLayout       = "2006-01-02 15:04"
)

type ReportStorage interface {
	GetOrders(ctx context.Context) ([]storage.Order, error)
	GetAssignments(ctx context.Context) ([]storage.Assignment, error)
}

type GenerateExcelService struct {
	storage ReportStorage
}

func NewGenerateService(storage ReportStorage) *GenerateExcelService {
	return &GenerateExcelService{storage: storage}
}

// OrdersReport writes the orders matching status (all when empty) with a sales total row.
func (g *GenerateExcelService) OrdersReport(ctx context.Context, status string) ([]byte, error) {
	const op = "service.generate_excel.OrdersReport"

	orders, err := g.storage.GetOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch orders: %w", op, err)
	}
	orders = board.FilterOrders(orders, status)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	headers := []string{"Order Number", "Customer", "Phone", "Address", "Status", "Created", "Amount"}
	if err := writeHeader(f, ordersSheet, headers); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var total float64
	for i, o := range orders {
		row := i + 2
		created := ""
		if !o.CreatedAt.IsZero() {
			created = o.CreatedAt.Format(timeLayout)
		}
		if err := f.SetSheetRow(ordersSheet, cellName(1, row), &[]any{
			o.OrderNumber,
			o.Customer.Name,
			o.Customer.Phone,
			o.Customer.Address,
			string(o.Status),
			created,
			o.TotalAmount,
		}); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", op, row, err)
		}
		total += o.TotalAmount
	}

	totalRow := len(orders) + 2
	f.SetCellValue(ordersSheet, cellName(6, totalRow), "Total")
	f.SetCellValue(ordersSheet, cellName(7, totalRow), total)

	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err == nil {
		f.SetCellStyle(ordersSheet, cellName(7, 2), cellName(7, totalRow), amountStyle)
	}
	f.SetColWidth(ordersSheet, "A", "G", 18)

	return finish(f, ordersSheet)
}

// AssignmentsReport writes the assignments matching status (all when empty).
func (g *GenerateExcelService) AssignmentsReport(ctx context.Context, status string) ([]byte, error) {
	const op = "service.generate_excel.AssignmentsReport"

	list, err := g.storage.GetAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch assignments: %w", op, err)
	}
	list = board.FilterAssignments(list, status)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", assignmentsSheet); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	headers := []string{"Order Number", "Partner", "Status", "Failure Reason", "Timestamp"}
	if err := writeHeader(f, assignmentsSheet, headers); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i, a := range list {
		row := i + 2
		partner := a.PartnerName()
		if partner == "" {
			partner = "Unknown Partner"
		}
		reason := a.FailureReason()
		if reason == "" {
			reason = "N/A"
		}
		ts := ""
		if !a.Timestamp.IsZero() {
			ts = a.Timestamp.Format(timeLayout)
		}
		if err := f.SetSheetRow(assignmentsSheet, cellName(1, row), &[]any{
			a.OrderNumber(), partner, a.Status, reason, ts,
		}); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", op, row, err)
		}
	}
	f.SetColWidth(assignmentsSheet, "A", "E", 20)

	return finish(f, assignmentsSheet)
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	for i, name := range headers {
		if err := f.SetCellValue(sheet, cellName(i+1, 1), name); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), headerStyle)
}

func finish(f *excelize.File, sheet string) ([]byte, error) {
	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
