package roster

import (
	"time"

	"alvares/internal/pib"
	"alvares/internal/service/attendance"
	"alvares/internal/storage"
)

type Member struct {
	Rank     string `json:"rank"`
	Pib      string `json:"pib"`
	Position string `json:"position"`
}

type RoleGroup struct {
	Role    storage.Role `json:"role"`
	Members []Member     `json:"members"`
}

// Composition - склад БР на дату, групи в порядку каталогу ролей.
type Composition struct {
	BRDate    time.Time   `json:"br_date"`
	TabelDate time.Time   `json:"tabel_date"`
	Groups    []RoleGroup `json:"groups"`
}

// Members returns the members of a role; nil for an unknown role.
func (c *Composition) Members(roleName string) []Member {
	for _, g := range c.Groups {
		if g.Role.Name == roleName {
			return g.Members
		}
	}
	return nil
}

// All returns every member in catalog order.
func (c *Composition) All() []Member {
	var all []Member
	for _, g := range c.Groups {
		all = append(all, g.Members...)
	}
	return all
}

// Compose puts every person with an assigned role who is marked "100"
// that day into the role's group. "роп" does not count. Every role gets
// a group, possibly empty.
func Compose(roles []storage.Role, personnel []storage.PersonWithRole, day []attendance.DayEntry) []RoleGroup {
	eligible := make(map[string]attendance.DayEntry)
	for _, e := range day {
		if e.Category == attendance.Full {
			eligible[pib.Key(e.Pib)] = e
		}
	}

	groups := make([]RoleGroup, len(roles))
	byID := make(map[int64]int, len(roles))
	for i, r := range roles {
		groups[i] = RoleGroup{Role: r, Members: []Member{}}
		byID[r.ID] = i
	}

	for _, p := range personnel {
		if !p.HasRole() {
			continue
		}
		i, ok := byID[*p.RoleID]
		if !ok {
			continue
		}
		e, ok := eligible[pib.Key(p.Pib)]
		if !ok {
			continue
		}

		rank := e.Rank
		if rank == "" {
			rank = p.Rank
		}
		groups[i].Members = append(groups[i].Members, Member{Rank: rank, Pib: e.Pib, Position: p.Position})
	}

	for i := range groups {
		pib.SortBy(groups[i].Members, func(m Member) string { return m.Pib })
	}

	return groups
}
