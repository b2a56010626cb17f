package update

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"alvares/http-server/respond"
)

type RoleSetter interface {
	SetRole(ctx context.Context, name string, roleID *int64) error
}

type Request struct {
	Pib string `json:"pib"`
	// null знімає роль
	RoleID *int64 `json:"role_id"`
}

// SetRole призначає або знімає роль вручну.
func SetRole(log *slog.Logger, setter RoleSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.personnel.SetRole"

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			respond.BadRequest(w, r, "ошибка парсинга JSON")
			return
		}
		if strings.TrimSpace(req.Pib) == "" {
			respond.BadRequest(w, r, "Missing required field 'pib'")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := setter.SetRole(ctx, req.Pib, req.RoleID); err != nil {
			respond.Error(w, r, log, op, err)
			return
		}

		render.JSON(w, r, map[string]string{"status": "updated"})
	}
}
