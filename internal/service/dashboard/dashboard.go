package dashboard

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"delivery-admin/internal/storage"
)

type DashboardStorage interface {
	GetAssignmentMetrics(ctx context.Context) (*storage.Metrics, error)
	GetPartners(ctx context.Context) ([]storage.Partner, error)
	GetOrders(ctx context.Context) ([]storage.Order, error)
	GetMetrics(ctx context.Context) (*storage.Metrics, error)
}

type PartnerSummary struct {
	TotalPartners        int     `json:"totalPartners"`
	ActivePartners       int     `json:"activePartners"`
	AverageRating        float64 `json:"averageRating"`
	TotalCompletedOrders int     `json:"totalCompletedOrders"`
	TotalCancelledOrders int     `json:"totalCancelledOrders"`
}

type OrderSummary struct {
	TotalOrders     int     `json:"totalOrders"`
	PendingOrders   int     `json:"pendingOrders"`
	AssignedOrders  int     `json:"assignedOrders"`
	PickedOrders    int     `json:"pickedOrders"`
	CompletedOrders int     `json:"completedOrders"`
	TotalSales      float64 `json:"totalSales"`
}

// Dashboard is the view state of the dashboard page. A nil section failed to load.
type Dashboard struct {
	AssignmentMetrics *storage.Metrics `json:"assignmentMetrics"`
	Partners          *PartnerSummary  `json:"partnerMetrics"`
	Orders            *OrderSummary    `json:"orderMetrics"`
	Platform          *storage.Metrics `json:"platformMetrics"`
}

type Service struct {
	storage DashboardStorage
	log     *slog.Logger
}

func NewService(storage DashboardStorage, log *slog.Logger) *Service {
	return &Service{storage: storage, log: log}
}

func SummarizePartners(partners []storage.Partner) PartnerSummary {
	var s PartnerSummary
	var ratingSum float64

	s.TotalPartners = len(partners)
	for _, p := range partners {
		if p.Status == storage.PartnerActive {
			s.ActivePartners++
		}
		ratingSum += p.Metrics.Rating
		s.TotalCompletedOrders += p.Metrics.CompletedOrders
		s.TotalCancelledOrders += p.Metrics.CancelledOrders
	}
	if s.TotalPartners > 0 {
		s.AverageRating = ratingSum / float64(s.TotalPartners)
	}
	return s
}

// SummarizeOrders counts orders per status; delivered orders count as completed.
func SummarizeOrders(orders []storage.Order) OrderSummary {
	s := OrderSummary{TotalOrders: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case storage.OrderPending:
			s.PendingOrders++
		case storage.OrderAssigned:
			s.AssignedOrders++
		case storage.OrderPicked:
			s.PickedOrders++
		case storage.OrderDelivered:
			s.CompletedOrders++
		}
		s.TotalSales += o.TotalAmount
	}
	return s
}

// Load fetches every dashboard section concurrently. A failing section is
// logged and left nil; it never blanks the others.
func (s *Service) Load(ctx context.Context) *Dashboard {
	const op = "service.dashboard.Load"

	log := s.log.With(slog.String("op", op))
	d := &Dashboard{}

	var g errgroup.Group
	g.Go(func() error {
		m, err := s.storage.GetAssignmentMetrics(ctx)
		if err != nil {
			log.Error("failed to fetch assignment metrics", slog.String("error", err.Error()))
			return nil
		}
		d.AssignmentMetrics = m
		return nil
	})
	g.Go(func() error {
		partners, err := s.storage.GetPartners(ctx)
		if err != nil {
			log.Error("failed to fetch partners", slog.String("error", err.Error()))
			return nil
		}
		sum := SummarizePartners(partners)
		d.Partners = &sum
		return nil
	})
	g.Go(func() error {
		orders, err := s.storage.GetOrders(ctx)
		if err != nil {
			log.Error("failed to fetch orders", slog.String("error", err.Error()))
			return nil
		}
		sum := SummarizeOrders(orders)
		d.Orders = &sum
		return nil
	})
	g.Go(func() error {
		m, err := s.storage.GetMetrics(ctx)
		if err != nil {
			log.Warn("failed to fetch platform metrics", slog.String("error", err.Error()))
			return nil
		}
		d.Platform = m
		return nil
	})
	_ = g.Wait()

	return d
}
