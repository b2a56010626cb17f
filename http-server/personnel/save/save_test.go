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

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alvares/internal/apperr"
)

type MockPersonnelService struct {
	mock.Mock
}

func (m *MockPersonnelService) ImportPersonnel(ctx context.Context, sheetName string) (int, error) {
	args := m.Called(ctx, sheetName)
	return args.Int(0), args.Error(1)
}

func (m *MockPersonnelService) AutoAssignAll(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestImportPersonnel(t *testing.T) {
	mockService := new(MockPersonnelService)
	mockService.On("ImportPersonnel", mock.Anything, "Травень_2025").Return(42, nil)
	mockService.On("ImportPersonnel", mock.Anything, "Липень_2025").
		Return(0, fmt.Errorf("import: %w", apperr.NewLookup("аркуш", "Липень_2025")))

	handler := ImportPersonnel(discardLogger(), mockService)

	// 1. Успішний імпорт
	req := httptest.NewRequest(http.MethodPost, "/api/personnel/import", strings.NewReader(`{"month":"Травень_2025"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp ImportResponse
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, 42, resp.Imported)

	// 2. Немає аркуша
	req = httptest.NewRequest(http.MethodPost, "/api/personnel/import", strings.NewReader(`{"month":"Липень_2025"}`))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// 3. Без місяця
	req = httptest.NewRequest(http.MethodPost, "/api/personnel/import", strings.NewReader(`{}`))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	mockService.AssertExpectations(t)
}

func TestAutoAssignRoles(t *testing.T) {
	mockService := new(MockPersonnelService)
	mockService.On("AutoAssignAll", mock.Anything).Return(map[string]int{"Водії роти": 3, "Старший бойовий медик": 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/personnel/auto-assign", nil)
	rr := httptest.NewRecorder()

	AutoAssignRoles(discardLogger(), mockService).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp AssignResponse
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 3, resp.Assigned["Водії роти"])
}
