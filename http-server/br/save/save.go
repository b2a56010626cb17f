package save

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"alvares/http-server/respond"
	"alvares/internal/calendar"
)

type BRGenerator interface {
	GenerateRange(ctx context.Context, from, to time.Time) ([]string, error)
}

type Request struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Response struct {
	Created int      `json:"created"`
	Paths   []string `json:"paths"`
}

// GenerateBR створює документи БР на кожну дату діапазону.
func GenerateBR(log *slog.Logger, gen BRGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.br.GenerateBR"

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			respond.BadRequest(w, r, "ошибка парсинга JSON")
			return
		}

		from, err := calendar.ParseFlexibleDate(req.From)
		if err != nil {
			respond.BadRequest(w, r, "Некоректна початкова дата (ДД.ММ.РРРР)")
			return
		}

		// без кінцевої дати - один БР
		to := from
		if req.To != "" {
			if to, err = calendar.ParseFlexibleDate(req.To); err != nil {
				respond.BadRequest(w, r, "Некоректна кінцева дата (ДД.ММ.РРРР)")
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Minute)
		defer cancel()

		paths, err := gen.GenerateRange(ctx, from, to)
		if err != nil {
			respond.Error(w, r, log, op, err)
			return
		}

		log.Info("BR documents created", slog.Int("count", len(paths)))
		render.JSON(w, r, Response{Created: len(paths), Paths: paths})
	}
}
