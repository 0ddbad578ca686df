package postgres

import (
	"strconv"
	"strings"

	"github.com/oksasatya/user-registry/internal/domain/repository"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchFilter renders the WHERE clause for c. Matching is a case-sensitive
// substring test; blank criteria are ignored. Address criteria only match
// users that have an address because NULL never satisfies LIKE.
func searchFilter(c repository.SearchCriteria) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(column string, v *string) {
		if v == nil || strings.TrimSpace(*v) == "" {
			return
		}
		args = append(args, likeEscaper.Replace(*v))
		conds = append(conds, column+` LIKE '%' || $`+strconv.Itoa(len(args))+` || '%'`)
	}
	add("u.name", c.Name)
	add("a.province", c.Province)
	add("a.city", c.City)

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
