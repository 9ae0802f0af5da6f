// Package page holds the response helpers shared by the view handlers.
package page

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"delivery-admin/internal/view"
)

const (
	// Timeout bounds the backend work behind one page.
	Timeout = 15 * time.Second
	// ExportTimeout bounds building one Excel report.
	ExportTimeout = 2 * Timeout
)

type Renderer interface {
	Render(w io.Writer, page string, data view.Page) error
}

// WantsJSON reports whether the caller asked for the view model instead of HTML.
func WantsJSON(r *http.Request) bool {
	return render.GetAcceptedContentType(r) == render.ContentTypeJSON
}

// Respond writes data as JSON for API callers, otherwise the rendered page.
func Respond(w http.ResponseWriter, r *http.Request, log *slog.Logger, rnd Renderer, name, title string, content, data any) {
	if WantsJSON(r) {
		render.JSON(w, r, data)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rnd.Render(w, name, view.Page{Title: title, Content: content}); err != nil {
		log.Error("failed to render page",
			slog.String("page", name),
			slog.String("error", err.Error()),
		)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// SeeOther sends a browser back to a list after a form post, so a refresh
// does not repeat the mutation.
func SeeOther(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Logger tags log with the handler op and the request id.
func Logger(log *slog.Logger, r *http.Request, op string) *slog.Logger {
	return log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}
