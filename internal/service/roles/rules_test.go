package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alvares/internal/constants"
)

func TestAutoClassifyRole(t *testing.T) {
	tests := []struct {
		position string
		want     string
	}{
		{"Заступник командира роти", constants.RoleDeputyCommander},
		{"офіцер з МПЗ", constants.RoleMPZOfficer},
		{"офіцер з морально-психологічного забезпечення", constants.RoleMPZOfficer},
		{"старший бойовий медик", constants.RoleMedic},
		{"санітар-стрілець", constants.RoleMedic},
		{"командир 1 штурмового взводу", constants.RolePlatoonCommand},
		{"водій-санітар групи евакуації", constants.RoleMedic},
		{"водій групи евакуації", constants.RoleEvacDriver},
		{"Водiй евакуаційного відділення", constants.RoleEvacDriver},
		{"стрілець групи евакуації", constants.RoleEvacGroup},
		{"головний сержант роти", constants.RoleChiefSergeant},
		{"головний сержант - водій", constants.RoleChiefSergeant},
		{"сержант із матеріального забезпечення", constants.RoleSupplySergeant},
		{"водій-стрілець", constants.RoleDrivers},
		{"старший радіотелефоніст відділення зв'язку", constants.RoleSignal},
		{"начальник зв’язку", constants.RoleSignal},
		{"старший технік роти", constants.RoleSeniorTech},
		{"навідник-оператор БМП", constants.RoleBMPCrews},
	}

	for _, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			got, ok := AutoClassifyRole(tt.position)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAutoClassifyRole_NoMatch(t *testing.T) {
	for _, position := range []string{"", "   ", "стрілець", "кулеметник"} {
		_, ok := AutoClassifyRole(position)
		assert.False(t, ok, position)
	}
}

func TestRules_CoverCatalog(t *testing.T) {
	// кожна роль правила існує в каталозі
	catalog := make(map[string]bool)
	for _, r := range constants.DefaultRoles {
		catalog[r] = true
	}
	for _, r := range rules {
		assert.True(t, catalog[r.role], r.role)
	}
}
