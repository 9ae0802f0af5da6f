package assignments

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"delivery-admin/internal/service/board"
	"delivery-admin/internal/storage"
)

// partnerFetchLimit bounds concurrent per-partner metric requests.
const partnerFetchLimit = 8

type AssignmentStorage interface {
	GetAssignments(ctx context.Context) ([]storage.Assignment, error)
	GetAssignmentMetrics(ctx context.Context) (*storage.Metrics, error)
	GetPartnerAssignmentMetrics(ctx context.Context, partnerName string) (*storage.PartnerAssignmentMetrics, error)
}

type Board struct {
	Assignments    []storage.Assignment               `json:"assignments"`
	Global         *storage.Metrics                   `json:"globalMetrics"`
	PartnerMetrics []storage.PartnerAssignmentMetrics `json:"partnerMetrics"`
}

type Service struct {
	storage AssignmentStorage
	log     *slog.Logger
}

func NewService(storage AssignmentStorage, log *slog.Logger) *Service {
	return &Service{storage: storage, log: log}
}

// Load fetches assignments and global metrics together, then the metrics of
// every distinct partner seen in the assignments. Failures are logged and the
// affected part is left empty.
func (s *Service) Load(ctx context.Context) *Board {
	const op = "service.assignments.Load"

	log := s.log.With(slog.String("op", op))
	b := &Board{}

	var g errgroup.Group
	g.Go(func() error {
		list, err := s.storage.GetAssignments(ctx)
		if err != nil {
			log.Error("failed to fetch assignments", slog.String("error", err.Error()))
			return nil
		}
		b.Assignments = list
		return nil
	})
	g.Go(func() error {
		m, err := s.storage.GetAssignmentMetrics(ctx)
		if err != nil {
			log.Error("failed to fetch global metrics", slog.String("error", err.Error()))
			return nil
		}
		b.Global = m
		return nil
	})
	_ = g.Wait()

	if len(b.Assignments) > 0 {
		b.PartnerMetrics = s.partnerMetrics(ctx, log, board.DistinctPartnerNames(b.Assignments))
	}
	return b
}

// partnerMetrics fans out one request per name and merges the answers by name,
// so the result order follows names regardless of completion order.
func (s *Service) partnerMetrics(ctx context.Context, log *slog.Logger, names []string) []storage.PartnerAssignmentMetrics {
	var (
		mu     sync.Mutex
		byName = make(map[string]storage.PartnerAssignmentMetrics, len(names))
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(partnerFetchLimit)
	for _, name := range names {
		g.Go(func() error {
			m, err := s.storage.GetPartnerAssignmentMetrics(gCtx, name)
			if err != nil {
				log.Error("failed to fetch partner metrics",
					slog.String("partner", name),
					slog.String("error", err.Error()),
				)
				return nil
			}
			m.PartnerName = name

			mu.Lock()
			byName[name] = *m
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	out := make([]storage.PartnerAssignmentMetrics, 0, len(byName))
	for _, name := range names {
		if m, ok := byName[name]; ok {
			out = append(out, m)
		}
	}
	return out
}
