package storage

import "errors"

var (
	ErrRoleNotFound   = errors.New("роль не знайдено")
	ErrPersonNotFound = errors.New("особу не знайдено")
)

type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Person - запис особового складу; ПІБ є ключем.
type Person struct {
	Pib      string `json:"pib"`
	Rank     string `json:"rank"`
	Position string `json:"position"`
}

type PersonWithRole struct {
	Person
	RoleID   *int64  `json:"role_id"`
	RoleName *string `json:"role_name"`
}

// HasRole reports whether a role is assigned.
func (p PersonWithRole) HasRole() bool {
	return p.RoleID != nil
}
