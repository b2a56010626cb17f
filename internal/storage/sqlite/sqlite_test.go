package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alvares/internal/constants"
	"alvares/internal/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.Init(context.Background()))
	return s
}

func TestInit_RoleCatalog(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// повторний Init не дублює ролі
	require.NoError(t, s.Init(ctx))

	roles, err := s.GetAllRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, len(constants.DefaultRoles))

	for i, r := range roles {
		assert.Equal(t, constants.DefaultRoles[i], r.Name)
	}

	role, err := s.GetRoleByID(ctx, roles[10].ID)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleDrivers, role.Name)

	_, err = s.GetRoleByID(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrRoleNotFound)
}

func TestPersonnel_UpsertAndRoles(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// 1. Імпорт
	n, err := s.UpsertPersonnelBatch(ctx, []storage.Person{
		{Pib: " Коваленко  Іван ", Rank: "сержант", Position: "водій"},
		{Pib: "Бондар Олег", Rank: "солдат", Position: "стрілець"},
		{Pib: "   "},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	roles, err := s.GetAllRoles(ctx)
	require.NoError(t, err)
	drivers := roles[10].ID

	// 2. Призначення ролі
	require.NoError(t, s.SetPersonnelRole(ctx, "Коваленко Іван", &drivers))

	// 3. Повторний імпорт оновлює звання, але не чіпає роль
	_, err = s.UpsertPersonnelBatch(ctx, []storage.Person{{Pib: "Коваленко Іван", Rank: "старший сержант", Position: "водій"}})
	require.NoError(t, err)

	all, err := s.GetAllPersonnel(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, "Бондар Олег", all[0].Pib)
	assert.False(t, all[0].HasRole())

	k := all[1]
	assert.Equal(t, "Коваленко Іван", k.Pib)
	assert.Equal(t, "старший сержант", k.Rank)
	require.True(t, k.HasRole())
	assert.Equal(t, drivers, *k.RoleID)
	assert.Equal(t, constants.RoleDrivers, *k.RoleName)

	byRole, err := s.GetPersonnelByRole(ctx, drivers)
	require.NoError(t, err)
	assert.Equal(t, []storage.Person{{Pib: "Коваленко Іван", Rank: "старший сержант", Position: "водій"}}, byRole)

	// 4. Зняття ролі
	require.NoError(t, s.SetPersonnelRole(ctx, "Коваленко Іван", nil))
	byRole, err = s.GetPersonnelByRole(ctx, drivers)
	require.NoError(t, err)
	assert.Empty(t, byRole)
}

func TestSetPersonnelRole_Errors(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.UpsertPersonnelBatch(ctx, []storage.Person{{Pib: "Бондар Олег"}})
	require.NoError(t, err)

	missing := int64(999)
	assert.ErrorIs(t, s.SetPersonnelRole(ctx, "Бондар Олег", &missing), storage.ErrRoleNotFound)

	one := int64(1)
	assert.ErrorIs(t, s.SetPersonnelRole(ctx, "Невідомий", &one), storage.ErrPersonNotFound)
}
