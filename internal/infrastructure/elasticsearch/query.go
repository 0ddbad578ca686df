package elasticsearch

import (
	"strings"

	"github.com/oksasatya/user-registry/internal/domain/repository"
)

// maxSearchHits bounds a single search; results are not paginated.
const maxSearchHits = 10000

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

func buildSearchQuery(c repository.SearchCriteria) map[string]any {
	var filters []any
	add := func(field string, v *string) {
		if v == nil || strings.TrimSpace(*v) == "" {
			return
		}
		filters = append(filters, map[string]any{
			"wildcard": map[string]any{
				field: map[string]any{"value": "*" + wildcardEscaper.Replace(*v) + "*"},
			},
		})
	}
	add("name", c.Name)
	add("address.province", c.Province)
	add("address.city", c.City)

	query := map[string]any{"match_all": map[string]any{}}
	if len(filters) > 0 {
		query = map[string]any{"bool": map[string]any{"filter": filters}}
	}
	return map[string]any{
		"query": query,
		"size":  maxSearchHits,
		"sort":  []any{map[string]any{"id": "asc"}},
	}
}
