package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"delivery-admin/internal/storage"
)

var errEmptyID = errors.New("empty id")

func (s *Storage) GetOrders(ctx context.Context) ([]storage.Order, error) {
	const op = "storage.api.GetOrders"

	var orders []storage.Order
	if err := s.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

func (s *Storage) UpdateOrderStatus(ctx context.Context, id string, status storage.OrderStatus) (*storage.Order, error) {
	const op = "storage.api.UpdateOrderStatus"

	if id == "" {
		return nil, fmt.Errorf("%s: %w", op, errEmptyID)
	}

	var order storage.Order
	path := "/orders/" + url.PathEscape(id) + "/status"
	if err := s.do(ctx, http.MethodPut, path, storage.OrderStatusUpdate{Status: status}, &order); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &order, nil
}

func (s *Storage) DeleteOrder(ctx context.Context, id string) error {
	const op = "storage.api.DeleteOrder"

	if id == "" {
		return fmt.Errorf("%s: %w", op, errEmptyID)
	}

	if err := s.do(ctx, http.MethodDelete, "/orders/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
