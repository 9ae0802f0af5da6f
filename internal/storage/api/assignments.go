package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"delivery-admin/internal/storage"
)

func (s *Storage) GetAssignments(ctx context.Context) ([]storage.Assignment, error) {
	const op = "storage.api.GetAssignments"

	var assignments []storage.Assignment
	if err := s.do(ctx, http.MethodGet, "/assignments", nil, &assignments); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return assignments, nil
}

func (s *Storage) GetAssignmentMetrics(ctx context.Context) (*storage.Metrics, error) {
	const op = "storage.api.GetAssignmentMetrics"

	var m storage.Metrics
	if err := s.do(ctx, http.MethodGet, "/assignments/metrics", nil, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &m, nil
}

func (s *Storage) GetPartnerAssignmentMetrics(ctx context.Context, partnerName string) (*storage.PartnerAssignmentMetrics, error) {
	const op = "storage.api.GetPartnerAssignmentMetrics"

	if partnerName == "" {
		return nil, fmt.Errorf("%s: empty partner name", op)
	}

	var m storage.PartnerAssignmentMetrics
	path := "/assignments/partner/" + url.PathEscape(partnerName) + "/metrics"
	if err := s.do(ctx, http.MethodGet, path, nil, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if m.PartnerName == "" {
		m.PartnerName = partnerName
	}
	return &m, nil
}

// GetMetrics reads the platform-wide metrics endpoint.
func (s *Storage) GetMetrics(ctx context.Context) (*storage.Metrics, error) {
	const op = "storage.api.GetMetrics"

	var m storage.Metrics
	if err := s.do(ctx, http.MethodGet, "/metrics", nil, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &m, nil
}
