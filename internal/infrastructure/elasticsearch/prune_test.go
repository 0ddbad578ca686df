package elasticsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/oksasatya/user-registry/internal/domain/repository"
)

func TestStaleIDs(t *testing.T) {
	tests := []struct {
		name          string
		indexed, live []int64
		want          []int64
	}{
		{"in sync", []int64{1, 2, 3}, []int64{1, 2, 3}, nil},
		{"deleted users", []int64{1, 2, 3, 4}, []int64{1, 3}, []int64{2, 4}},
		{"empty storage", []int64{5, 1}, nil, []int64{1, 5}},
		{"created after snapshot", []int64{1}, []int64{1, 2}, nil},
		{"duplicates", []int64{7, 7}, nil, []int64{7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StaleIDs(tt.indexed, tt.live); !slices.Equal(got, tt.want) {
				t.Fatalf("StaleIDs = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIdsPageQuery(t *testing.T) {
	after := int64(1000)
	tests := []struct {
		name  string
		after *int64
		want  string
	}{
		{"first page", nil, `{"_source":["id"],"query":{"match_all":{}},"size":1000,"sort":[{"id":"asc"}]}`},
		{"next page", &after, `{"_source":["id"],"query":{"match_all":{}},"search_after":[1000],"size":1000,"sort":[{"id":"asc"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(idsPageQuery(tt.after))
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tt.want {
				t.Fatalf("query =\n%s\nwant\n%s", b, tt.want)
			}
		})
	}
}

// fakeCluster answers _search requests from a sorted id list honoring size and search_after.
type fakeCluster struct {
	ids      []int64
	total    int
	relation string
	searches int
}

func (f *fakeCluster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	if !strings.HasSuffix(r.URL.Path, "/_search") {
		_, _ = w.Write([]byte(`{}`))
		return
	}
	f.searches++
	var body struct {
		Size        int     `json:"size"`
		SearchAfter []int64 `json:"search_after"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	var hits []string
	for _, id := range f.ids {
		if len(body.SearchAfter) > 0 && id <= body.SearchAfter[0] {
			continue
		}
		if len(hits) == body.Size {
			break
		}
		hits = append(hits, fmt.Sprintf(`{"_source":{"id":%d,"name":"u%d"}}`, id, id))
	}
	total := f.total
	if total == 0 {
		total = len(f.ids)
	}
	relation := f.relation
	if relation == "" {
		relation = "eq"
	}
	_, _ = fmt.Fprintf(w, `{"hits":{"total":{"value":%d,"relation":%q},"hits":[%s]}}`, total, relation, strings.Join(hits, ","))
}

func newFakeIndexer(t *testing.T, cluster *fakeCluster, logger *logrus.Logger) *Indexer {
	t.Helper()
	srv := httptest.NewServer(cluster)
	t.Cleanup(srv.Close)
	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	return NewIndexer(es, "users", logger)
}

func TestIndexer_IndexedIDsPages(t *testing.T) {
	cluster := &fakeCluster{}
	for id := int64(1); id <= 2*idsPageSize+5; id++ {
		cluster.ids = append(cluster.ids, id)
	}
	logger, _ := logtest.NewNullLogger()
	ix := newFakeIndexer(t, cluster, logger)

	got, err := ix.IndexedIDs(context.Background())
	if err != nil {
		t.Fatalf("IndexedIDs: %v", err)
	}
	if !slices.Equal(got, cluster.ids) {
		t.Fatalf("got %d ids, want %d", len(got), len(cluster.ids))
	}
	if cluster.searches != 3 {
		t.Fatalf("expected 3 pages, got %d", cluster.searches)
	}
}

func TestIndexer_SearchWarnsWhenTruncated(t *testing.T) {
	name := "u"
	tests := []struct {
		name     string
		cluster  *fakeCluster
		wantWarn bool
	}{
		{"complete", &fakeCluster{ids: []int64{1, 2}}, false},
		{"more matches than returned", &fakeCluster{ids: []int64{1, 2}, total: maxSearchHits + 1}, true},
		{"total is a lower bound", &fakeCluster{ids: []int64{1, 2}, relation: "gte"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := logtest.NewNullLogger()
			ix := newFakeIndexer(t, tt.cluster, logger)

			users, err := ix.Search(context.Background(), repository.SearchCriteria{Name: &name})
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if len(users) != 2 {
				t.Fatalf("expected 2 users, got %d", len(users))
			}
			warned := false
			for _, e := range hook.AllEntries() {
				if e.Level == logrus.WarnLevel {
					warned = true
				}
			}
			if warned != tt.wantWarn {
				t.Fatalf("warned = %v, want %v", warned, tt.wantWarn)
			}
		})
	}
}
