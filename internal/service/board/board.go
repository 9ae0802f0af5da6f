// Package board holds the in-memory list operations behind the list views:
// status filters and the local patches applied after a successful mutation.
package board

import "delivery-admin/internal/storage"

// FilterOrders returns the orders with the given status. An empty status keeps everything.
func FilterOrders(orders []storage.Order, status string) []storage.Order {
	if status == "" {
		return orders
	}

	out := make([]storage.Order, 0, len(orders))
	for _, o := range orders {
		if string(o.Status) == status {
			out = append(out, o)
		}
	}
	return out
}

func FilterAssignments(assignments []storage.Assignment, status string) []storage.Assignment {
	if status == "" {
		return assignments
	}

	out := make([]storage.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

// ReplacePartner swaps in the record the backend returned after an update.
func ReplacePartner(partners []storage.Partner, updated storage.Partner) []storage.Partner {
	out := make([]storage.Partner, len(partners))
	for i, p := range partners {
		if p.ID == updated.ID {
			p = updated
		}
		out[i] = p
	}
	return out
}

func RemovePartner(partners []storage.Partner, id string) []storage.Partner {
	out := make([]storage.Partner, 0, len(partners))
	for _, p := range partners {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func RemoveOrder(orders []storage.Order, id string) []storage.Order {
	out := make([]storage.Order, 0, len(orders))
	for _, o := range orders {
		if o.ID != id {
			out = append(out, o)
		}
	}
	return out
}

// ApplyOrderStatus patches only the status of the matching order.
func ApplyOrderStatus(orders []storage.Order, id string, status storage.OrderStatus) []storage.Order {
	out := make([]storage.Order, len(orders))
	for i, o := range orders {
		if o.ID == id {
			o.Status = status
		}
		out[i] = o
	}
	return out
}

// DistinctPartnerNames returns each non-empty partner name once, in first-seen order.
func DistinctPartnerNames(assignments []storage.Assignment) []string {
	seen := make(map[string]struct{}, len(assignments))
	var names []string
	for _, a := range assignments {
		name := a.PartnerName()
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
