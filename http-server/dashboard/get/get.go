package get

import (
	"context"
	"log/slog"
	"net/http"

	"delivery-admin/http-server/page"
	"delivery-admin/internal/service/dashboard"
	"delivery-admin/internal/view"
)

type DashboardLoader interface {
	Load(ctx context.Context) *dashboard.Dashboard
}

func GetDashboard(log *slog.Logger, loader DashboardLoader, rnd page.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dashboard.GetDashboard"

		log := page.Logger(log, r, op)

		ctx, cancel := context.WithTimeout(r.Context(), page.Timeout)
		defer cancel()

		d := loader.Load(ctx)

		page.Respond(w, r, log, rnd, view.PageDashboard, "Dashboard", view.NewDashboardPage(d), d)
	}
}
