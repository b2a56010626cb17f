package update

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"alvares/internal/apperr"
)

type MockRoleSetter struct {
	mock.Mock
}

func (m *MockRoleSetter) SetRole(ctx context.Context, name string, roleID *int64) error {
	args := m.Called(ctx, name, roleID)
	return args.Error(0)
}

func TestSetRole(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	roleID := int64(11)

	tests := []struct {
		name   string
		body   string
		setup  func(m *MockRoleSetter)
		status int
	}{
		{
			name: "assign",
			body: `{"pib":"Коваленко Іван","role_id":11}`,
			setup: func(m *MockRoleSetter) {
				m.On("SetRole", mock.Anything, "Коваленко Іван", &roleID).Return(nil)
			},
			status: http.StatusOK,
		},
		{
			name: "clear",
			body: `{"pib":"Коваленко Іван","role_id":null}`,
			setup: func(m *MockRoleSetter) {
				m.On("SetRole", mock.Anything, "Коваленко Іван", (*int64)(nil)).Return(nil)
			},
			status: http.StatusOK,
		},
		{
			name: "unknown role",
			body: `{"pib":"Коваленко Іван","role_id":99}`,
			setup: func(m *MockRoleSetter) {
				m.On("SetRole", mock.Anything, "Коваленко Іван", mock.Anything).Return(apperr.NewLookup("роль", "99"))
			},
			status: http.StatusNotFound,
		},
		{
			name:   "no pib",
			body:   `{"role_id":11}`,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSetter := new(MockRoleSetter)
			if tt.setup != nil {
				tt.setup(mockSetter)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/personnel/role", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			SetRole(log, mockSetter).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			mockSetter.AssertExpectations(t)
		})
	}
}
