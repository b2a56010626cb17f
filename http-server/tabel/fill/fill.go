package fill

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"alvares/http-server/respond"
	"alvares/internal/service/reconcile"
)

type TabelFiller interface {
	FillMonth(ctx context.Context, sheetName string) (int, error)
	FillAll(ctx context.Context) ([]reconcile.MonthResult, error)
}

type Request struct {
	// Порожній місяць - заповнити всі
	Month string `json:"month"`
}

type Response struct {
	Results []reconcile.MonthResult `json:"results"`
}

// FillTabel переносить періоди з файлів-джерел у табель.
func FillTabel(log *slog.Logger, filler TabelFiller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tabel.FillTabel"

		var req Request
		if r.ContentLength != 0 {
			if err := render.DecodeJSON(r.Body, &req); err != nil {
				respond.BadRequest(w, r, "ошибка парсинга JSON")
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Minute)
		defer cancel()

		if req.Month == "" {
			results, err := filler.FillAll(ctx)
			if err != nil {
				respond.Error(w, r, log, op, err)
				return
			}
			render.JSON(w, r, Response{Results: results})
			return
		}

		persons, err := filler.FillMonth(ctx, req.Month)
		if err != nil {
			respond.Error(w, r, log, op, err)
			return
		}

		render.JSON(w, r, Response{Results: []reconcile.MonthResult{{Sheet: req.Month, Persons: persons}}})
	}
}
