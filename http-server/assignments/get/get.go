package get

import (
	"context"
	"log/slog"
	"net/http"

	"delivery-admin/http-server/page"
	"delivery-admin/internal/service/assignments"
	"delivery-admin/internal/service/board"
	"delivery-admin/internal/view"
)

type BoardLoader interface {
	Load(ctx context.Context) *assignments.Board
}

// GetAssignments renders global and per-partner metrics over every
// assignment, and the table narrowed by ?status=.
func GetAssignments(log *slog.Logger, loader BoardLoader, rnd page.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.assignments.GetAssignments"

		log := page.Logger(log, r, op)
		status := r.URL.Query().Get("status")

		ctx, cancel := context.WithTimeout(r.Context(), page.Timeout)
		defer cancel()

		b := loader.Load(ctx)

		filtered := board.FilterAssignments(b.Assignments, status)
		log.Debug("assignments loaded",
			slog.Int("total", len(b.Assignments)),
			slog.Int("shown", len(filtered)),
			slog.Int("partners", len(b.PartnerMetrics)),
		)

		data := assignments.Board{
			Assignments:    filtered,
			Global:         b.Global,
			PartnerMetrics: b.PartnerMetrics,
		}
		page.Respond(w, r, log, rnd, view.PageAssignments, "Assignments",
			view.NewAssignmentsPage(b, filtered, status), data)
	}
}
