package constants

const (
	RoleDeputyCommander = "Заступник командира роти"
	RoleMPZOfficer      = "Офіцер з МПЗ"
	RoleSeniorTech      = "Старший технік роти"
	RoleChiefSergeant   = "Головний сержант роти"
	RoleSupplySergeant  = "Сержант із матеріального забезпечення"
	RoleMedic           = "Старший бойовий медик"
	RoleEvacGroup       = "Група евакуації"
	RoleEvacDriver      = "Водій групи евакуації"
	RoleBMPCrews        = "Екіпажі розрахунків БМП-1ЛБ"
	RolePlatoonCommand  = "Командири штурмових взводів"
	RoleDrivers         = "Водії роти"
	RoleSignal          = "Чергові зв'язківці"
	RoleReserve         = "Резервні групи"
)

// DefaultRoles - каталог ролей у порядку відображення.
var DefaultRoles = []string{
	RoleDeputyCommander,
	RoleMPZOfficer,
	RoleSeniorTech,
	RoleChiefSergeant,
	RoleSupplySergeant,
	RoleMedic,
	RoleEvacGroup,
	RoleEvacDriver,
	RoleBMPCrews,
	RolePlatoonCommand,
	RoleDrivers,
	RoleSignal,
	RoleReserve,
}

// RolePlaceholders - роль -> плейсхолдер у шаблоні БР.
var RolePlaceholders = map[string]string{
	RoleDeputyCommander: "{{ROLE_ZKR}}",
	RoleMPZOfficer:      "{{ROLE_PPP}}",
	RoleSeniorTech:      "{{ROLE_SENIOR_TECH}}",
	RoleChiefSergeant:   "{{ROLE_FIRST_SERGEANT}}",
	RoleSupplySergeant:  "{{ROLE_SUPPLY_SERGEANT}}",
	RoleMedic:           "{{ROLE_MEDIC}}",
	RoleEvacGroup:       "{{ROLE_EVAC_GROUP}}",
	RoleEvacDriver:      "{{ROLE_EVAC_DRIVER}}",
	RoleBMPCrews:        "{{ROLE_BMP_CREWS}}",
	RolePlatoonCommand:  "{{ROLE_VZVOD}}",
	RoleDrivers:         "{{ROLE_DRIVERS}}",
	RoleSignal:          "{{ROLE_SIGNAL}}",
	RoleReserve:         "{{ROLE_RESERVE}}",
}

// Ключові слова посад для автопризначення ролей
var (
	KeywordsMedic  = []string{"медик", "медичн", "санітар"}
	KeywordsDriver = []string{"водій", "водiй"} // друге - з латинською "i"
	KeywordsSignal = []string{"зв'яз", "зв’яз", "звʼяз"}
)
