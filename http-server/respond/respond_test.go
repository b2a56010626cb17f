package respond

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alvares/internal/apperr"
)

func TestError(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"lookup", fmt.Errorf("op: %w", apperr.NewLookup("аркуш", "Липень_2025")), http.StatusNotFound},
		{"exists", apperr.ErrSheetExists, http.StatusConflict},
		{"internal", errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			Error(rr, req, log, "test", tt.err)

			assert.Equal(t, tt.status, rr.Code)

			var resp ErrorResponse
			require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
			assert.Equal(t, tt.err.Error(), resp.Error)
		})
	}
}
