package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"alvares/http-server/respond"
	"alvares/internal/calendar"
)

type MonthsProvider interface {
	AvailableMonths(ctx context.Context) ([]string, error)
}

type Month struct {
	Sheet   string `json:"sheet"`
	Display string `json:"display"`
}

type Response struct {
	Months []Month `json:"months"`
}

func GetMonths(log *slog.Logger, months MonthsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.months.GetMonths"

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		sheets, err := months.AvailableMonths(ctx)
		if err != nil {
			respond.Error(w, r, log, op, err)
			return
		}

		response := Response{Months: make([]Month, 0, len(sheets))}
		for _, s := range sheets {
			response.Months = append(response.Months, Month{Sheet: s, Display: calendar.MonthDisplay(s)})
		}

		render.JSON(w, r, response)
	}
}
