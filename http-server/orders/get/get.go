package get

import (
	"context"
	"log/slog"
	"net/http"

	"delivery-admin/http-server/page"
	"delivery-admin/internal/service/board"
	"delivery-admin/internal/storage"
	"delivery-admin/internal/view"
)

type OrdersProvider interface {
	GetOrders(ctx context.Context) ([]storage.Order, error)
}

// GetOrders renders the orders table, narrowed by the optional ?status= filter.
func GetOrders(log *slog.Logger, orders OrdersProvider, rnd page.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.GetOrders"

		log := page.Logger(log, r, op)

		ctx, cancel := context.WithTimeout(r.Context(), page.Timeout)
		defer cancel()

		list := Load(ctx, log, orders)
		Respond(w, r, log, rnd, list, StatusFilter(r.URL.Query().Get("status"), log))
	}
}

func Load(ctx context.Context, log *slog.Logger, orders OrdersProvider) []storage.Order {
	list, err := orders.GetOrders(ctx)
	if err != nil {
		log.Error("failed to fetch orders", slog.String("error", err.Error()))
		return nil
	}
	return list
}

// Respond narrows list to status and writes the page.
func Respond(w http.ResponseWriter, r *http.Request, log *slog.Logger, rnd page.Renderer, list []storage.Order, status string) {
	filtered := board.FilterOrders(list, status)
	if filtered == nil {
		filtered = []storage.Order{}
	}

	page.Respond(w, r, log, rnd, view.PageOrders, "Orders", view.NewOrdersPage(filtered, status), filtered)
}

// StatusFilter validates a status filter. Unknown values fall back to showing every order.
func StatusFilter(status string, log *slog.Logger) string {
	if status != "" && !storage.ValidOrderStatus(status) {
		log.Warn("ignoring unknown status filter", slog.String("status", status))
		return ""
	}
	return status
}
