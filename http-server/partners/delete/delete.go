package delete

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"delivery-admin/http-server/page"
	getpartners "delivery-admin/http-server/partners/get"
	"delivery-admin/internal/service/board"
	"delivery-admin/internal/storage"
)

const partnersPath = "/partners"

type PartnerDeleter interface {
	GetPartners(ctx context.Context) ([]storage.Partner, error)
	DeletePartner(ctx context.Context, id string) error
}

func DeletePartner(log *slog.Logger, partners PartnerDeleter, rnd page.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.partners.DeletePartner"

		log := page.Logger(log, r, op)
		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), page.Timeout)
		defer cancel()

		err := partners.DeletePartner(ctx, id)
		if err != nil {
			log.Error("failed to delete partner", slog.String("id", id), slog.String("error", err.Error()))
		} else {
			log.Info("partner deleted", slog.String("id", id))
		}

		if !page.WantsJSON(r) {
			page.SeeOther(w, r, partnersPath)
			return
		}

		list := getpartners.Load(ctx, log, partners)
		if err == nil {
			list = board.RemovePartner(list, id)
		}

		getpartners.Respond(w, r, log, rnd, list, nil)
	}
}
