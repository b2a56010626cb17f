package generate_excel

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/render"

	"alvares/http-server/respond"
	report "alvares/internal/service/generate-excel"
)

type ExcelGenerator interface {
	GenerateExcel(ctx context.Context, monthSheet string, r report.Report) ([]byte, string, error)
	GenerateAll(ctx context.Context, monthSheet string, reports []report.Report) ([]report.ReportResult, error)
}

// GenerateReportExcel віддає один рапорт файлом (ДГВ - xlsx, підтвердження - docx):
// ?month=Травень_2025&kind=dgv|confirmation&category=100|30|0
func GenerateReportExcel(log *slog.Logger, gen ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GenerateReportExcel"

		q := r.URL.Query()
		month := q.Get("month")
		if month == "" {
			respond.BadRequest(w, r, "Missing required query parameter 'month'")
			return
		}

		rep := report.Report{Kind: report.Kind(q.Get("kind")), Category: q.Get("category")}
		if rep.Kind == "" {
			rep.Kind = report.KindDGV
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second) // На Excel можно побольше времени
		defer cancel()

		data, fileName, err := gen.GenerateExcel(ctx, month, rep)
		if err != nil {
			respond.Error(w, r, log, op, err)
			return
		}

		w.Header().Set("Content-Type", rep.ContentType())
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(fileName))
		if _, err := w.Write(data); err != nil {
			log.Error("failed to write report", slog.String("op", op), slog.String("error", err.Error()))
		}
	}
}

type Request struct {
	Month string `json:"month"`
	// Порожній список - всі п'ять рапортів
	Reports []report.Report `json:"reports"`
}

type Response struct {
	Results []report.ReportResult `json:"results"`
}

// GenerateReports записує рапорти місяця в каталог output.
func GenerateReports(log *slog.Logger, gen ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GenerateReports"

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			respond.BadRequest(w, r, "ошибка парсинга JSON")
			return
		}
		if req.Month == "" {
			respond.BadRequest(w, r, "Missing required field 'month'")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), time.Minute)
		defer cancel()

		results, err := gen.GenerateAll(ctx, req.Month, req.Reports)
		if err != nil {
			respond.Error(w, r, log, op, err)
			return
		}

		render.JSON(w, r, Response{Results: results})
	}
}
