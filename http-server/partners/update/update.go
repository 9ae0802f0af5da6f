package update

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"delivery-admin/http-server/page"
	getpartners "delivery-admin/http-server/partners/get"
	"delivery-admin/internal/service/board"
	"delivery-admin/internal/storage"
)

const partnersPath = "/partners"

type PartnerUpdater interface {
	GetPartners(ctx context.Context) ([]storage.Partner, error)
	UpdatePartner(ctx context.Context, id string, upd storage.PartnerUpdate) (*storage.Partner, error)
}

// UpdatePartner submits the edit form as posted. Browsers are redirected back
// to the list; JSON callers get the list holding the record the backend
// returned, or the unchanged list when the update failed.
func UpdatePartner(log *slog.Logger, partners PartnerUpdater, rnd page.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.partners.UpdatePartner"

		log := page.Logger(log, r, op)
		id := chi.URLParam(r, "id")

		var form storage.PartnerUpdate
		if err := render.Decode(r, &form); err != nil {
			log.Error("invalid partner form", slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid form", http.StatusBadRequest)
			return
		}

		if !storage.ValidPartnerStatus(form.Status) {
			log.Error("invalid partner status", slog.String("status", form.Status))
			http.Error(w, "Bad request: status must be active or inactive", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), page.Timeout)
		defer cancel()

		updated, err := partners.UpdatePartner(ctx, id, form)
		if err != nil {
			log.Error("failed to update partner", slog.String("id", id), slog.String("error", err.Error()))
		} else {
			log.Info("partner updated", slog.String("id", updated.ID))
		}

		if !page.WantsJSON(r) {
			page.SeeOther(w, r, partnersPath)
			return
		}

		list := getpartners.Load(ctx, log, partners)
		if err == nil {
			list = board.ReplacePartner(list, *updated)
		}

		getpartners.Respond(w, r, log, rnd, list, nil)
	}
}
