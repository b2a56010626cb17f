package save

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"alvares/http-server/respond"
)

type PersonnelImporter interface {
	ImportPersonnel(ctx context.Context, sheetName string) (int, error)
}

type RoleAssigner interface {
	AutoAssignAll(ctx context.Context) (map[string]int, error)
}

type ImportRequest struct {
	Month string `json:"month"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}

// ImportPersonnel оновлює особовий склад з аркуша місяця.
func ImportPersonnel(log *slog.Logger, importer PersonnelImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.personnel.ImportPersonnel"

		var req ImportRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			respond.BadRequest(w, r, "ошибка парсинга JSON")
			return
		}
		if req.Month == "" {
			respond.BadRequest(w, r, "Missing required field 'month'")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		n, err := importer.ImportPersonnel(ctx, req.Month)
		if err != nil {
			respond.Error(w, r, log, op, err)
			return
		}

		log.Info("personnel imported", slog.String("month", req.Month), slog.Int("count", n))
		render.JSON(w, r, ImportResponse{Imported: n})
	}
}

type AssignResponse struct {
	Assigned map[string]int `json:"assigned"`
	Total    int            `json:"total"`
}

// AutoAssignRoles призначає ролі за посадою тим, у кого ролі ще немає.
func AutoAssignRoles(log *slog.Logger, assigner RoleAssigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.personnel.AutoAssignRoles"

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		counts, err := assigner.AutoAssignAll(ctx)
		if err != nil {
			respond.Error(w, r, log, op, err)
			return
		}

		response := AssignResponse{Assigned: counts}
		if response.Assigned == nil {
			response.Assigned = map[string]int{}
		}
		for _, n := range counts {
			response.Total += n
		}

		render.JSON(w, r, response)
	}
}
