package generate_excel

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"delivery-admin/internal/storage"
)

type MockReportStorage struct {
	mock.Mock
}

func (m *MockReportStorage) GetOrders(ctx context.Context) ([]storage.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Order), args.Error(1)
}

func (m *MockReportStorage) GetAssignments(ctx context.Context) ([]storage.Assignment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Assignment), args.Error(1)
}

func openReport(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestOrdersReport_FiltersAndTotals(t *testing.T) {
	st := new(MockReportStorage)
	st.On("GetOrders", mock.Anything).Return([]storage.Order{
		{OrderNumber: "ORD-1", Customer: storage.Customer{Name: "Asha"}, Status: storage.OrderPending, TotalAmount: 10,
			CreatedAt: time.Date(2024, 12, 26, 10, 0, 0, 0, time.UTC)},
		{OrderNumber: "ORD-2", Status: storage.OrderDelivered, TotalAmount: 99},
		{OrderNumber: "ORD-3", Status: storage.OrderPending, TotalAmount: 5.5},
	}, nil)

	data, err := NewGenerateService(st).OrdersReport(context.Background(), "pending")
	require.NoError(t, err)

	f := openReport(t, data)
	rows, err := f.GetRows(ordersSheet)
	require.NoError(t, err)

	require.Len(t, rows, 4)
	assert.Equal(t, "Order Number", rows[0][0])
	assert.Equal(t, "ORD-1", rows[1][0])
	assert.Equal(t, "Asha", rows[1][1])
	assert.Equal(t, "2024-12-26 10:00", rows[1][5])
	assert.Equal(t, "ORD-3", rows[2][0])
	assert.Equal(t, "Total", rows[3][5])

	total, err := f.GetCellValue(ordersSheet, "G4", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "15.5", total)
}

func TestOrdersReport_StorageError(t *testing.T) {
	st := new(MockReportStorage)
	st.On("GetOrders", mock.Anything).Return(nil, errors.New("down"))

	_, err := NewGenerateService(st).OrdersReport(context.Background(), "")
	assert.ErrorContains(t, err, "fetch orders")
}

func TestAssignmentsReport_Placeholders(t *testing.T) {
	reason := "Address not found"
	st := new(MockReportStorage)
	st.On("GetAssignments", mock.Anything).Return([]storage.Assignment{
		{Order: &storage.AssignmentOrder{OrderNumber: "ORD-1"}, Partner: &storage.AssignmentPartner{Name: "Ravi"}, Status: "failed", Reason: &reason},
		{Order: &storage.AssignmentOrder{OrderNumber: "ORD-2"}, Status: "completed"},
	}, nil)

	data, err := NewGenerateService(st).AssignmentsReport(context.Background(), "")
	require.NoError(t, err)

	rows, err := openReport(t, data).GetRows(assignmentsSheet)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ORD-1", "Ravi", "failed", "Address not found"}, rows[1][:4])
	assert.Equal(t, []string{"ORD-2", "Unknown Partner", "completed", "N/A"}, rows[2][:4])
}
