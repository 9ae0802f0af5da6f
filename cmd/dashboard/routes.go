package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/rs/cors"

	getassignments "delivery-admin/http-server/assignments/get"
	getdashboard "delivery-admin/http-server/dashboard/get"
	generate_excel "delivery-admin/http-server/generate-report/generate-excel"
	deleteorder "delivery-admin/http-server/orders/delete"
	getorders "delivery-admin/http-server/orders/get"
	updateorder "delivery-admin/http-server/orders/update"
	deletepartner "delivery-admin/http-server/partners/delete"
	getpartners "delivery-admin/http-server/partners/get"
	updatepartner "delivery-admin/http-server/partners/update"
	"delivery-admin/internal/config"
	"delivery-admin/internal/middleware/auth"
	"delivery-admin/internal/service/assignments"
	"delivery-admin/internal/service/dashboard"
	generate_excel2 "delivery-admin/internal/service/generate-excel"
	"delivery-admin/internal/storage/api"
	"delivery-admin/internal/view"
)

type services struct {
	dashboard   *dashboard.Service
	assignments *assignments.Service
	reports     *generate_excel2.GenerateExcelService
}

func routes(cfg config.Config, log *slog.Logger, storage *api.Storage, svc services, rnd *view.Renderer) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})

	router.Group(func(r chi.Router) {
		if cfg.AuthEnabled() {
			r.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))
		} else {
			log.Warn("admin credentials not set, UI is unauthenticated")
		}

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
		})

		r.Get("/dashboard", getdashboard.GetDashboard(log, svc.dashboard, rnd))

		r.Get("/partners", getpartners.GetPartners(log, storage, rnd))
		r.Get("/partners/{id}/edit", getpartners.EditPartner(log, storage, rnd))
		r.Post("/partners/{id}", updatepartner.UpdatePartner(log, storage, rnd))
		r.Post("/partners/{id}/delete", deletepartner.DeletePartner(log, storage, rnd))

		r.Get("/orders", getorders.GetOrders(log, storage, rnd))
		r.Get("/orders/export", generate_excel.OrdersReportExcel(log, svc.reports))
		r.Post("/orders/{id}/status", updateorder.UpdateOrderStatus(log, storage, rnd))
		r.Post("/orders/{id}/delete", deleteorder.DeleteOrder(log, storage, rnd))

		r.Get("/assignments", getassignments.GetAssignments(log, svc.assignments, rnd))
		r.Get("/assignments/export", generate_excel.AssignmentsReportExcel(log, svc.reports))
	})

	return router
}
