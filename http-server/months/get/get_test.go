package get

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alvares/internal/apperr"
)

type MockMonthsProvider struct {
	mock.Mock
}

func (m *MockMonthsProvider) AvailableMonths(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetMonths_Success(t *testing.T) {
	mockMonths := new(MockMonthsProvider)
	mockMonths.On("AvailableMonths", mock.Anything).Return([]string{"Травень_2025", "Червень_2025"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/months", nil)
	rr := httptest.NewRecorder()

	GetMonths(discardLogger(), mockMonths).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, []Month{
		{Sheet: "Травень_2025", Display: "травень 2025"},
		{Sheet: "Червень_2025", Display: "червень 2025"},
	}, resp.Months)

	mockMonths.AssertExpectations(t)
}

func TestGetMonths_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"no tabel", apperr.NewLookup("файл табеля", "Табель.xlsx"), http.StatusNotFound},
		{"broken file", errors.New("zip: not a valid zip file"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMonths := new(MockMonthsProvider)
			mockMonths.On("AvailableMonths", mock.Anything).Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/api/months", nil)
			rr := httptest.NewRecorder()

			GetMonths(discardLogger(), mockMonths).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.err.Error())
		})
	}
}
