package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alvares/internal/constants"
	"alvares/internal/storage"
)

var testDB *sql.DB

func TestMain(m *testing.M) {
	// Тести потребують живої БД: MYSQL_TEST_DSN="user:pass@tcp(localhost:3306)/alvares_test?parseTime=true"
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		os.Exit(m.Run())
	}

	var err error
	testDB, err = sql.Open("mysql", dsn)
	if err != nil {
		panic(fmt.Errorf("не вдалося підключитися до тестової БД: %w", err))
	}

	if err := testDB.Ping(); err != nil {
		panic(fmt.Errorf("ping failed: %w", err))
	}

	code := m.Run()
	testDB.Close()

	os.Exit(code)
}

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	if testDB == nil {
		t.Skip("MYSQL_TEST_DSN не задано")
	}

	ctx := context.Background()
	for _, table := range []string{"personnel_roles", "personnel", "roles"} {
		_, _ = testDB.ExecContext(ctx, "DROP TABLE IF EXISTS "+table)
	}

	s := NewWithDB(testDB)
	require.NoError(t, s.Init(ctx))
	return s
}

func TestStorage_RolesAndPersonnel(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	roles, err := s.GetAllRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, len(constants.DefaultRoles))

	n, err := s.UpsertPersonnelBatch(ctx, []storage.Person{{Pib: "Коваленко Іван", Rank: "сержант", Position: "водій"}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	drivers := roles[10].ID
	require.NoError(t, s.SetPersonnelRole(ctx, "Коваленко  Іван", &drivers))

	all, err := s.GetAllPersonnel(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.True(t, all[0].HasRole())
	assert.Equal(t, constants.RoleDrivers, *all[0].RoleName)

	missing := int64(999)
	assert.ErrorIs(t, s.SetPersonnelRole(ctx, "Коваленко Іван", &missing), storage.ErrRoleNotFound)
	assert.ErrorIs(t, s.SetPersonnelRole(ctx, "Хтось", nil), storage.ErrPersonNotFound)
}
