package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"delivery-admin/http-server/page"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportGenerator interface {
	OrdersReport(ctx context.Context, status string) ([]byte, error)
	AssignmentsReport(ctx context.Context, status string) ([]byte, error)
}

func OrdersReportExcel(log *slog.Logger, gen ReportGenerator) http.HandlerFunc {
	return report(log, "handlers.report.OrdersReportExcel", "Orders", gen.OrdersReport)
}

func AssignmentsReportExcel(log *slog.Logger, gen ReportGenerator) http.HandlerFunc {
	return report(log, "handlers.report.AssignmentsReportExcel", "Assignments", gen.AssignmentsReport)
}

func report(log *slog.Logger, op, name string, build func(context.Context, string) ([]byte, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := page.Logger(log, r, op)
		status := r.URL.Query().Get("status")

		ctx, cancel := context.WithTimeout(r.Context(), page.ExportTimeout)
		defer cancel()

		data, err := build(ctx, status)
		if err != nil {
			log.Error("failed to generate excel", slog.String("error", err.Error()))
			http.Error(w, "Report unavailable", http.StatusBadGateway)
			return
		}

		fileName := fmt.Sprintf("%s_Report_%s.xlsx", name, time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		if _, err := w.Write(data); err != nil {
			log.Error("failed to write report", slog.String("error", err.Error()))
		}
	}
}
