package roles

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"alvares/internal/constants"
)

type rule struct {
	match func(position string) bool
	role  string
}

func has(s string, words ...string) bool {
	for _, w := range words {
		if !strings.Contains(s, w) {
			return false
		}
	}
	return true
}

func hasAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func isEvac(p string) bool   { return has(p, "евак") }
func isDriver(p string) bool { return hasAny(p, constants.KeywordsDriver...) }

// Порядок важливий: перше правило, що спрацювало, виграє.
var rules = []rule{
	{func(p string) bool { return has(p, "заступник", "командир") }, constants.RoleDeputyCommander},
	{func(p string) bool { return has(p, "мпз") || has(p, "морально", "псих") }, constants.RoleMPZOfficer},
	{func(p string) bool { return hasAny(p, constants.KeywordsMedic...) }, constants.RoleMedic},
	{func(p string) bool { return has(p, "командир", "взвод") }, constants.RolePlatoonCommand},
	{func(p string) bool { return isEvac(p) && isDriver(p) }, constants.RoleEvacDriver},
	{isEvac, constants.RoleEvacGroup},
	{func(p string) bool { return has(p, "головний сержант") }, constants.RoleChiefSergeant},
	{func(p string) bool { return has(p, "матеріаль") }, constants.RoleSupplySergeant},
	{isDriver, constants.RoleDrivers},
	{func(p string) bool { return hasAny(p, constants.KeywordsSignal...) }, constants.RoleSignal},
	{func(p string) bool { return has(p, "технік") }, constants.RoleSeniorTech},
	{func(p string) bool { return has(p, "бмп") }, constants.RoleBMPCrews},
}

// AutoClassifyRole infers a catalog role from a position title.
func AutoClassifyRole(position string) (string, bool) {
	p := cases.Lower(language.Ukrainian).String(strings.TrimSpace(position))
	if p == "" {
		return "", false
	}

	for _, r := range rules {
		if r.match(p) {
			return r.role, true
		}
	}
	return "", false
}
