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

type PersonnelProvider interface {
	ListPersonnel(ctx context.Context) ([]storage.PersonWithRole, error)
}

type Response struct {
	Personnel []storage.PersonWithRole `json:"personnel"`
	Assigned  int                      `json:"assigned"`
}

// GetPersonnel - особовий склад з ролями, за абеткою.
func GetPersonnel(log *slog.Logger, personnel PersonnelProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.personnel.GetPersonnel"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := personnel.ListPersonnel(ctx)
		if err != nil {
			respond.Error(w, r, log, op, err)
			return
		}

		response := Response{Personnel: list}
		if response.Personnel == nil {
			response.Personnel = []storage.PersonWithRole{}
		}
		for _, p := range list {
			if p.HasRole() {
				response.Assigned++
			}
		}

		render.JSON(w, r, response)
	}
}
