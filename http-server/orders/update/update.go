package update

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	getorders "delivery-admin/http-server/orders/get"
	"delivery-admin/http-server/page"
	"delivery-admin/internal/service/board"
	"delivery-admin/internal/storage"
	"delivery-admin/internal/view"
)

type OrderStatusUpdater interface {
	GetOrders(ctx context.Context) ([]storage.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status storage.OrderStatus) (*storage.Order, error)
}

type Request struct {
	Status string `json:"status" form:"status"`
	// StatusFilter is the list filter the form was posted from.
	StatusFilter string `json:"status_filter,omitempty" form:"status_filter"`
}

// UpdateOrderStatus changes one order's status. Browsers are redirected back
// to the filtered list; JSON callers get the list with the status the backend
// reported back.
func UpdateOrderStatus(log *slog.Logger, orders OrderStatusUpdater, rnd page.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.UpdateOrderStatus"

		log := page.Logger(log, r, op)
		id := chi.URLParam(r, "id")

		var req Request
		if err := render.Decode(r, &req); err != nil {
			log.Error("invalid status form", slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid form", http.StatusBadRequest)
			return
		}

		if !storage.ValidOrderStatus(req.Status) {
			log.Error("invalid order status", slog.String("status", req.Status))
			http.Error(w, "Bad request: unknown order status", http.StatusBadRequest)
			return
		}
		filter := getorders.StatusFilter(req.StatusFilter, log)

		ctx, cancel := context.WithTimeout(r.Context(), page.Timeout)
		defer cancel()

		updated, err := orders.UpdateOrderStatus(ctx, id, storage.OrderStatus(req.Status))
		if err != nil {
			log.Error("failed to update order status", slog.String("id", id), slog.String("error", err.Error()))
		}

		if !page.WantsJSON(r) {
			page.SeeOther(w, r, view.ListURL(view.OrdersPath, filter))
			return
		}

		list := getorders.Load(ctx, log, orders)
		if err == nil {
			status := updated.Status
			if status == "" {
				status = storage.OrderStatus(req.Status)
			}
			log.Info("order status updated", slog.String("id", id), slog.String("status", string(status)))
			list = board.ApplyOrderStatus(list, id, status)
		}

		getorders.Respond(w, r, log, rnd, list, filter)
	}
}
