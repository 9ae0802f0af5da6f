package get

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"delivery-admin/http-server/page"
	"delivery-admin/internal/storage"
	"delivery-admin/internal/view"
)

type PartnersProvider interface {
	GetPartners(ctx context.Context) ([]storage.Partner, error)
}

func GetPartners(log *slog.Logger, partners PartnersProvider, rnd page.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.partners.GetPartners"

		log := page.Logger(log, r, op)

		ctx, cancel := context.WithTimeout(r.Context(), page.Timeout)
		defer cancel()

		list := Load(ctx, log, partners)
		Respond(w, r, log, rnd, list, nil)
	}
}

// EditPartner renders the partners page with the edit modal prefilled for {id}.
func EditPartner(log *slog.Logger, partners PartnersProvider, rnd page.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.partners.EditPartner"

		log := page.Logger(log, r, op)
		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), page.Timeout)
		defer cancel()

		list := Load(ctx, log, partners)

		var editing *storage.Partner
		for i := range list {
			if list[i].ID == id {
				editing = &list[i]
				break
			}
		}
		if editing == nil {
			log.Warn("partner to edit not found", slog.String("id", id))
		}

		Respond(w, r, log, rnd, list, editing)
	}
}

// Load fetches the partner list, logging and returning nil on failure.
func Load(ctx context.Context, log *slog.Logger, partners PartnersProvider) []storage.Partner {
	list, err := partners.GetPartners(ctx)
	if err != nil {
		log.Error("failed to fetch partners", slog.String("error", err.Error()))
		return nil
	}
	return list
}

func Respond(w http.ResponseWriter, r *http.Request, log *slog.Logger, rnd page.Renderer, list []storage.Partner, editing *storage.Partner) {
	if list == nil {
		list = []storage.Partner{}
	}
	page.Respond(w, r, log, rnd, view.PagePartners, "Partners", view.NewPartnersPage(list, editing), list)
}
