package save

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"alvares/http-server/respond"
)

type MonthCreator interface {
	AddMonth(ctx context.Context, year int, month time.Month) (string, error)
}

type Request struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type Response struct {
	Sheet string `json:"sheet"`
}

// AddMonth створює аркуш нового місяця в табелі.
func AddMonth(log *slog.Logger, creator MonthCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.months.AddMonth"

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			respond.BadRequest(w, r, "ошибка парсинга JSON")
			return
		}

		if req.Month < 1 || req.Month > 12 || req.Year < 2000 || req.Year > 2100 {
			respond.BadRequest(w, r, "некоректний місяць або рік")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		sheet, err := creator.AddMonth(ctx, req.Year, time.Month(req.Month))
		if err != nil {
			respond.Error(w, r, log, op, err)
			return
		}

		log.Info("month sheet created", slog.String("sheet", sheet))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{Sheet: sheet})
	}
}
