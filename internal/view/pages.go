package view

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"

	"delivery-admin/internal/service/assignments"
	"delivery-admin/internal/service/dashboard"
	"delivery-admin/internal/storage"
)

const (
	unknownPartner = "Unknown Partner"
	noReason       = "N/A"
)

type DashboardPage struct {
	*dashboard.Dashboard
	// Charts lists every chart present, for the script block.
	Charts       []Chart
	OrderChart   *Chart
	SplitChart   *Chart
	RatesChart   *Chart
	ReasonsChart *Chart
}

func NewDashboardPage(d *dashboard.Dashboard) DashboardPage {
	p := DashboardPage{Dashboard: d}

	if m := d.AssignmentMetrics; m != nil {
		rates := NewChart("assignment-rates", "Assignment Metrics", ChartLine,
			[]string{"Success", "Failure"},
			NewDataset("Assignment Rates", []float64{m.SuccessRate, m.FailureRate}, colorTeal, colorRed),
		)
		p.RatesChart = &rates

		reasons := NewChart("failure-reasons", "Failure Reasons", ChartBar,
			m.FailureReasons.Labels(),
			NewDataset("Failure Reasons", Ints(m.FailureReasons.Counts()), colorRed),
		)
		p.ReasonsChart = &reasons
	}

	if o := d.Orders; o != nil {
		orders := NewChart("order-status", "Order Status", ChartBar,
			[]string{"Pending", "Assigned", "Picked", "Completed"},
			NewDataset("Order Status",
				Ints([]int{o.PendingOrders, o.AssignedOrders, o.PickedOrders, o.CompletedOrders}),
				colorYellow, colorBlue, colorPurple, colorTeal),
		)
		p.OrderChart = &orders
	}

	if pm := d.Partners; pm != nil {
		split := NewChart("completed-cancelled", "Completed vs Cancelled Orders", ChartPie,
			[]string{"Completed Orders", "Cancelled Orders"},
			NewDataset("Order Distribution",
				Ints([]int{pm.TotalCompletedOrders, pm.TotalCancelledOrders}),
				colorTeal, colorRed),
		)
		p.SplitChart = &split
	}

	for _, c := range []*Chart{p.RatesChart, p.OrderChart, p.SplitChart, p.ReasonsChart} {
		if c != nil {
			p.Charts = append(p.Charts, *c)
		}
	}
	return p
}

type PartnersPage struct {
	Table    Table
	Modal    Modal
	Form     storage.PartnerUpdate
	Action   string
	Statuses []Option
}

func PartnersTable(partners []storage.Partner) Table {
	t := Table{Headers: []string{"Name", "Email", "Phone", "Status", "Current Load"}}
	for _, p := range partners {
		id := url.PathEscape(p.ID)
		t.Rows = append(t.Rows, Row{
			ID:        p.ID,
			Cells:     []string{p.Name, p.Email, p.Phone, p.Status, strconv.Itoa(p.CurrentLoad)},
			EditURL:   "/partners/" + id + "/edit",
			DeleteURL: "/partners/" + id + "/delete",
		})
	}
	return t
}

// NewPartnersPage renders the table and, when editing is set, the open edit modal prefilled from it.
func NewPartnersPage(partners []storage.Partner, editing *storage.Partner) PartnersPage {
	p := PartnersPage{
		Table: PartnersTable(partners),
		Modal: Modal{Title: "Edit Partner", CloseURL: "/partners"},
	}
	status := storage.PartnerActive
	if editing != nil {
		p.Modal.Open = true
		p.Form = storage.PartnerUpdate{
			Name:   editing.Name,
			Email:  editing.Email,
			Phone:  editing.Phone,
			Status: editing.Status,
		}
		p.Action = "/partners/" + url.PathEscape(editing.ID)
		status = editing.Status
	}
	p.Statuses = Options(storage.PartnerStatuses, status, false)
	return p
}

const (
	OrdersPath      = "/orders"
	AssignmentsPath = "/assignments"
)

type OrdersPage struct {
	Table     Table
	Filter    []Option
	FilterURL string
	ExportURL string
}

func OrdersTable(orders []storage.Order) Table {
	statuses := make([]string, len(storage.OrderStatuses))
	for i, s := range storage.OrderStatuses {
		statuses[i] = string(s)
	}

	t := Table{Headers: []string{"Order Number", "Customer", "Status", "Amount"}}
	for _, o := range orders {
		id := url.PathEscape(o.ID)
		t.Rows = append(t.Rows, Row{
			ID: o.ID,
			Cells: []string{
				o.OrderNumber,
				fmt.Sprintf("%s (%s)", o.Customer.Name, o.Customer.Phone),
				string(o.Status),
				Money(o.TotalAmount),
			},
			StatusURL:     "/orders/" + id + "/status",
			StatusOptions: Options(statuses, string(o.Status), false),
			DeleteURL:     "/orders/" + id + "/delete",
			Confirm:       "Are you sure you want to delete this order?",
		})
	}
	return t
}

func NewOrdersPage(orders []storage.Order, status string) OrdersPage {
	statuses := make([]string, len(storage.OrderStatuses))
	for i, s := range storage.OrderStatuses {
		statuses[i] = string(s)
	}
	table := OrdersTable(orders)
	table.Filter = status

	return OrdersPage{
		Table:     table,
		Filter:    Options(statuses, status, true),
		FilterURL: OrdersPath,
		ExportURL: ListURL(OrdersPath+"/export", status),
	}
}

type AssignmentsPage struct {
	Global         *storage.Metrics
	PartnerMetrics []storage.PartnerAssignmentMetrics
	Table          Table
	Filter         []Option
	FilterURL      string
	ExportURL      string
}

func AssignmentsTable(list []storage.Assignment) Table {
	t := Table{Headers: []string{"Order Number", "Partner", "Status", "Failure Reason"}}
	for _, a := range list {
		partner := a.PartnerName()
		if partner == "" {
			partner = unknownPartner
		}
		reason := a.FailureReason()
		if reason == "" {
			reason = noReason
		}
		t.Rows = append(t.Rows, Row{
			ID:    a.ID,
			Cells: []string{a.OrderNumber(), partner, a.Status, reason},
		})
	}
	return t
}

// NewAssignmentsPage shows metrics for every assignment and the table for the filtered subset.
// An unlisted status is added to the filter so the select matches the table.
func NewAssignmentsPage(b *assignments.Board, filtered []storage.Assignment, status string) AssignmentsPage {
	statuses := storage.AssignmentStatuses
	if status != "" && !slices.Contains(statuses, status) {
		statuses = append(slices.Clip(statuses), status)
	}

	return AssignmentsPage{
		Global:         b.Global,
		PartnerMetrics: b.PartnerMetrics,
		Table:          AssignmentsTable(filtered),
		Filter:         Options(statuses, status, true),
		FilterURL:      AssignmentsPath,
		ExportURL:      ListURL(AssignmentsPath+"/export", status),
	}
}

// ListURL is path with the status filter as its query, if any.
func ListURL(path, status string) string {
	if status == "" {
		return path
	}
	return path + "?" + url.Values{"status": {status}}.Encode()
}
