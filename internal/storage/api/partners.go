package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"delivery-admin/internal/storage"
)

func (s *Storage) GetPartners(ctx context.Context) ([]storage.Partner, error) {
	const op = "storage.api.GetPartners"

	var partners []storage.Partner
	if err := s.do(ctx, http.MethodGet, "/partners", nil, &partners); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return partners, nil
}

// UpdatePartner sends the form fields and returns the record as the backend stored it.
func (s *Storage) UpdatePartner(ctx context.Context, id string, upd storage.PartnerUpdate) (*storage.Partner, error) {
	const op = "storage.api.UpdatePartner"

	if id == "" {
		return nil, fmt.Errorf("%s: %w", op, errEmptyID)
	}

	var partner storage.Partner
	if err := s.do(ctx, http.MethodPut, "/partners/"+url.PathEscape(id), upd, &partner); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &partner, nil
}

func (s *Storage) DeletePartner(ctx context.Context, id string) error {
	const op = "storage.api.DeletePartner"

	if id == "" {
		return fmt.Errorf("%s: %w", op, errEmptyID)
	}

	if err := s.do(ctx, http.MethodDelete, "/partners/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
