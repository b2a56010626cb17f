package save

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alvares/internal/apperr"
	"alvares/internal/calendar"
)

type MockBRGenerator struct {
	mock.Mock
}

func (m *MockBRGenerator) GenerateRange(ctx context.Context, from, to time.Time) ([]string, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateBR_Success(t *testing.T) {
	from, to := calendar.Date(2025, time.May, 1), calendar.Date(2025, time.May, 2)
	paths := []string{"output/БР_01_05_2025.docx", "output/БР_02_05_2025.docx"}

	mockGen := new(MockBRGenerator)
	mockGen.On("GenerateRange", mock.Anything, from, to).Return(paths, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/br/generate", strings.NewReader(`{"from":"01.05.2025","to":"02.05.2025"}`))
	rr := httptest.NewRecorder()

	GenerateBR(discardLogger(), mockGen).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, paths, resp.Paths)

	mockGen.AssertExpectations(t)
}

func TestGenerateBR_SingleDate(t *testing.T) {
	date := calendar.Date(2025, time.May, 1)

	mockGen := new(MockBRGenerator)
	mockGen.On("GenerateRange", mock.Anything, date, date).Return([]string{"output/БР_01_05_2025.docx"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/br/generate", strings.NewReader(`{"from":"01.05.2025"}`))
	rr := httptest.NewRecorder()

	GenerateBR(discardLogger(), mockGen).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockGen.AssertExpectations(t)
}

func TestGenerateBR_Errors(t *testing.T) {
	from, to := calendar.Date(2025, time.May, 3), calendar.Date(2025, time.May, 1)

	mockGen := new(MockBRGenerator)
	mockGen.On("GenerateRange", mock.Anything, from, to).
		Return(nil, fmt.Errorf("roster: %w", apperr.NewParse("03.05.2025 - 01.05.2025", nil)))

	// 1. Початок пізніше кінця
	req := httptest.NewRequest(http.MethodPost, "/api/br/generate", strings.NewReader(`{"from":"03.05.2025","to":"01.05.2025"}`))
	rr := httptest.NewRecorder()
	GenerateBR(discardLogger(), mockGen).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// 2. Некоректна дата - генератор не викликається
	req = httptest.NewRequest(http.MethodPost, "/api/br/generate", strings.NewReader(`{"from":"1 травня"}`))
	rr = httptest.NewRecorder()
	GenerateBR(discardLogger(), mockGen).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	mockGen.AssertNumberOfCalls(t, "GenerateRange", 1)
}
