// Package respond writes JSON error bodies for the handlers.
package respond

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"alvares/internal/apperr"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// Error logs err and answers with the status its kind maps to.
func Error(w http.ResponseWriter, r *http.Request, log *slog.Logger, op string, err error) {
	status := apperr.HTTPStatus(err)

	l := log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("error", err.Error()),
	)
	if status >= http.StatusInternalServerError {
		l.Error("request failed")
	} else {
		l.Warn("request rejected", slog.Int("status", status))
	}

	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: err.Error()})
}

func BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, ErrorResponse{Error: msg})
}
