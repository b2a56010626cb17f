package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"alvares/http-server/respond"
	"alvares/internal/calendar"
	"alvares/internal/service/roster"
)

type CompositionProvider interface {
	Composition(ctx context.Context, brDate time.Time) (*roster.Composition, error)
}

type NumberResponse struct {
	BRDate    string `json:"br_date"`
	TabelDate string `json:"tabel_date"`
	Number    string `json:"number"`
}

func parseDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		respond.BadRequest(w, r, "Missing required query parameter 'date'")
		return time.Time{}, false
	}

	date, err := calendar.ParseFlexibleDate(raw)
	if err != nil {
		respond.BadRequest(w, r, "Некоректний формат дати (ДД.ММ.РРРР)")
		return time.Time{}, false
	}
	return date, true
}

// GetBRNumber: ?date=01.05.2025 -> "№122 від 01.05.2025" (номер рахується від дати табеля).
func GetBRNumber(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brDate, ok := parseDate(w, r)
		if !ok {
			return
		}

		tabelDate := calendar.TabelDate(brDate)

		render.JSON(w, r, NumberResponse{
			BRDate:    calendar.FormatDate(brDate),
			TabelDate: calendar.FormatDate(tabelDate),
			Number:    calendar.DayNumberLabel(tabelDate),
		})
	}
}

type Group struct {
	Role    string          `json:"role"`
	Members []roster.Member `json:"members"`
}

type CompositionResponse struct {
	BRDate    string  `json:"br_date"`
	TabelDate string  `json:"tabel_date"`
	Groups    []Group `json:"groups"`
	Total     int     `json:"total"`
}

// GetComposition - попередній перегляд складу БР на дату.
func GetComposition(log *slog.Logger, provider CompositionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.br.GetComposition"

		brDate, ok := parseDate(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		c, err := provider.Composition(ctx, brDate)
		if err != nil {
			respond.Error(w, r, log, op, err)
			return
		}

		response := CompositionResponse{
			BRDate:    calendar.FormatDate(c.BRDate),
			TabelDate: calendar.FormatDate(c.TabelDate),
			Groups:    make([]Group, 0, len(c.Groups)),
		}
		for _, g := range c.Groups {
			response.Groups = append(response.Groups, Group{Role: g.Role.Name, Members: g.Members})
			response.Total += len(g.Members)
		}

		render.JSON(w, r, response)
	}
}
