package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"alvares/http-server/respond"
	"alvares/internal/storage"
)

type RolesProvider interface {
	ListRoles(ctx context.Context) ([]storage.Role, error)
}

type Response struct {
	Roles []storage.Role `json:"roles"`
}

func GetRoles(log *slog.Logger, roles RolesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.roles.GetRoles"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := roles.ListRoles(ctx)
		if err != nil {
			respond.Error(w, r, log, op, err)
			return
		}

		render.JSON(w, r, Response{Roles: list})
	}
}
