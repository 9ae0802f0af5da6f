package delete

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	getorders "delivery-admin/http-server/orders/get"
	"delivery-admin/http-server/page"
	"delivery-admin/internal/service/board"
	"delivery-admin/internal/storage"
	"delivery-admin/internal/view"
)

type OrderDeleter interface {
	GetOrders(ctx context.Context) ([]storage.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

func DeleteOrder(log *slog.Logger, orders OrderDeleter, rnd page.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.DeleteOrder"

		log := page.Logger(log, r, op)
		id := chi.URLParam(r, "id")
		filter := getorders.StatusFilter(r.PostFormValue("status_filter"), log)

		ctx, cancel := context.WithTimeout(r.Context(), page.Timeout)
		defer cancel()

		err := orders.DeleteOrder(ctx, id)
		if err != nil {
			log.Error("failed to delete order", slog.String("id", id), slog.String("error", err.Error()))
		} else {
			log.Info("order deleted", slog.String("id", id))
		}

		if !page.WantsJSON(r) {
			page.SeeOther(w, r, view.ListURL(view.OrdersPath, filter))
			return
		}

		list := getorders.Load(ctx, log, orders)
		if err == nil {
			list = board.RemoveOrder(list, id)
		}

		getorders.Respond(w, r, log, rnd, list, filter)
	}
}
