package repository_test

import (
	"testing"

	"github.com/oksasatya/user-registry/internal/domain/repository"
)

func TestSearchCriteria_IsEmpty(t *testing.T) {
	s := func(v string) *string { return &v }

	tests := []struct {
		name     string
		criteria repository.SearchCriteria
		want     bool
	}{
		{"all nil", repository.SearchCriteria{}, true},
		{"all empty", repository.SearchCriteria{Name: s(""), Province: s(""), City: s("")}, true},
		{"all whitespace", repository.SearchCriteria{Name: s("  "), Province: s("\t"), City: s(" ")}, true},
		{"name only", repository.SearchCriteria{Name: s("Juan")}, false},
		{"province only", repository.SearchCriteria{Province: s("Buenos")}, false},
		{"city only", repository.SearchCriteria{City: s("CABA")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criteria.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}
