package elasticsearch

import (
	"encoding/json"
	"testing"

	"github.com/oksasatya/user-registry/internal/domain/repository"
)

func TestBuildSearchQuery(t *testing.T) {
	s := func(v string) *string { return &v }
	tests := []struct {
		name     string
		criteria repository.SearchCriteria
		want     string
	}{
		{
			name:     "name only",
			criteria: repository.SearchCriteria{Name: s("Ana")},
			want:     `{"query":{"bool":{"filter":[{"wildcard":{"name":{"value":"*Ana*"}}}]}},"size":10000,"sort":[{"id":"asc"}]}`,
		},
		{
			name:     "address fields and blank name",
			criteria: repository.SearchCriteria{Name: s(" "), Province: s("Madrid"), City: s("Alc")},
			want:     `{"query":{"bool":{"filter":[{"wildcard":{"address.province":{"value":"*Madrid*"}}},{"wildcard":{"address.city":{"value":"*Alc*"}}}]}},"size":10000,"sort":[{"id":"asc"}]}`,
		},
		{
			name:     "wildcards escaped",
			criteria: repository.SearchCriteria{Name: s("a*b?")},
			want:     `{"query":{"bool":{"filter":[{"wildcard":{"name":{"value":"*a\\*b\\?*"}}}]}},"size":10000,"sort":[{"id":"asc"}]}`,
		},
		{
			name: "no criteria",
			want: `{"query":{"match_all":{}},"size":10000,"sort":[{"id":"asc"}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(buildSearchQuery(tt.criteria))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tt.want {
				t.Fatalf("query =\n%s\nwant\n%s", b, tt.want)
			}
		})
	}
}
