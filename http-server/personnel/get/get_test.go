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

	"alvares/internal/storage"
)

type MockPersonnelProvider struct {
	mock.Mock
}

func (m *MockPersonnelProvider) ListPersonnel(ctx context.Context) ([]storage.PersonWithRole, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.PersonWithRole), args.Error(1)
}

func TestGetPersonnel(t *testing.T) {
	roleID, roleName := int64(11), "Водії роти"
	list := []storage.PersonWithRole{
		{Person: storage.Person{Pib: "Бондар Олег", Rank: "солдат", Position: "стрілець"}},
		{Person: storage.Person{Pib: "Коваленко Іван", Rank: "сержант", Position: "водій"}, RoleID: &roleID, RoleName: &roleName},
	}

	mockPersonnel := new(MockPersonnelProvider)
	mockPersonnel.On("ListPersonnel", mock.Anything).Return(list, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/personnel", nil)
	rr := httptest.NewRecorder()

	GetPersonnel(slog.New(slog.NewTextHandler(io.Discard, nil)), mockPersonnel).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"role_id":null`)

	var resp Response
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, list, resp.Personnel)
	assert.Equal(t, 1, resp.Assigned)
}

func TestGetPersonnel_DBError(t *testing.T) {
	mockPersonnel := new(MockPersonnelProvider)
	mockPersonnel.On("ListPersonnel", mock.Anything).Return(nil, errors.New("database is locked"))

	req := httptest.NewRequest(http.MethodGet, "/api/personnel", nil)
	rr := httptest.NewRecorder()

	GetPersonnel(slog.New(slog.NewTextHandler(io.Discard, nil)), mockPersonnel).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
