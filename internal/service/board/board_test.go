package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"delivery-admin/internal/storage"
)

func orders() []storage.Order {
	return []storage.Order{
		{ID: "o1", OrderNumber: "ORD-1", Status: storage.OrderPending},
		{ID: "o2", OrderNumber: "ORD-2", Status: storage.OrderDelivered},
		{ID: "o3", OrderNumber: "ORD-3", Status: storage.OrderPending},
		{ID: "o4", OrderNumber: "ORD-4", Status: storage.OrderPicked},
	}
}

func TestFilterOrders(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   []string
	}{
		{name: "all", status: "", want: []string{"o1", "o2", "o3", "o4"}},
		{name: "pending", status: "pending", want: []string{"o1", "o3"}},
		{name: "delivered", status: "delivered", want: []string{"o2"}},
		{name: "none match", status: "assigned", want: []string{}},
		{name: "unknown", status: "lost", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterOrders(orders(), tt.status)

			ids := make([]string, 0, len(got))
			for _, o := range got {
				if tt.status != "" {
					assert.Equal(t, tt.status, string(o.Status))
				}
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilterAssignments(t *testing.T) {
	list := []storage.Assignment{
		{ID: "a1", Status: "completed"},
		{ID: "a2", Status: "failed"},
		{ID: "a3", Status: "completed"},
	}

	assert.Len(t, FilterAssignments(list, ""), 3)

	failed := FilterAssignments(list, "failed")
	assert.Len(t, failed, 1)
	assert.Equal(t, "a2", failed[0].ID)

	completed := FilterAssignments(list, "completed")
	assert.Equal(t, []storage.Assignment{list[0], list[2]}, completed)
}

func TestReplacePartner(t *testing.T) {
	partners := []storage.Partner{
		{ID: "p1", Name: "Asha", Status: "active"},
		{ID: "p2", Name: "Bo", Status: "active"},
	}
	updated := storage.Partner{ID: "p2", Name: "Bo Lee", Status: "inactive", CurrentLoad: 1}

	got := ReplacePartner(partners, updated)

	assert.Equal(t, partners[0], got[0])
	assert.Equal(t, updated, got[1])
	assert.Equal(t, "Bo", partners[1].Name, "input must not be mutated")
}

func TestReplacePartner_UnknownID(t *testing.T) {
	partners := []storage.Partner{{ID: "p1", Name: "Asha"}}

	got := ReplacePartner(partners, storage.Partner{ID: "zz", Name: "Ghost"})
	assert.Equal(t, partners, got)
}

func TestRemovePartner(t *testing.T) {
	partners := []storage.Partner{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}

	got := RemovePartner(partners, "p2")
	assert.Equal(t, []storage.Partner{{ID: "p1"}, {ID: "p3"}}, got)

	assert.Len(t, RemovePartner(partners, "nope"), 3)
}

func TestRemoveOrder(t *testing.T) {
	got := RemoveOrder(orders(), "o3")

	assert.Len(t, got, 3)
	for _, o := range got {
		assert.NotEqual(t, "o3", o.ID)
	}
}

func TestApplyOrderStatus(t *testing.T) {
	in := orders()
	got := ApplyOrderStatus(in, "o1", storage.OrderAssigned)

	assert.Equal(t, storage.OrderAssigned, got[0].Status)
	assert.Equal(t, "ORD-1", got[0].OrderNumber)
	assert.Equal(t, storage.OrderPending, got[2].Status)
	assert.Equal(t, storage.OrderPending, in[0].Status)
}

func TestDistinctPartnerNames(t *testing.T) {
	list := []storage.Assignment{
		{Partner: &storage.AssignmentPartner{Name: "Ravi"}},
		{Partner: nil},
		{Partner: &storage.AssignmentPartner{Name: "Mei"}},
		{Partner: &storage.AssignmentPartner{Name: "Ravi"}},
		{Partner: &storage.AssignmentPartner{Name: ""}},
	}

	assert.Equal(t, []string{"Ravi", "Mei"}, DistinctPartnerNames(list))
	assert.Nil(t, DistinctPartnerNames(nil))
}
