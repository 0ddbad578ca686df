package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
)

const idsPageSize = 1000

func idsPageQuery(after *int64) map[string]any {
	q := map[string]any{
		"_source": []string{"id"},
		"query":   map[string]any{"match_all": map[string]any{}},
		"size":    idsPageSize,
		"sort":    []any{map[string]any{"id": "asc"}},
	}
	if after != nil {
		q["search_after"] = []int64{*after}
	}
	return q
}

// IndexedIDs lists every user id present in the index, ascending.
func (ix *Indexer) IndexedIDs(ctx context.Context) ([]int64, error) {
	var (
		ids   []int64
		after *int64
	)
	for {
		b, err := json.Marshal(idsPageQuery(after))
		if err != nil {
			return nil, err
		}
		page, err := ix.idsPage(ctx, b)
		if err != nil {
			return nil, err
		}
		ids = append(ids, page...)
		if len(page) < idsPageSize {
			return ids, nil
		}
		last := page[len(page)-1]
		after = &last
	}
}

func (ix *Indexer) idsPage(ctx context.Context, body []byte) ([]int64, error) {
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := ix.es.Search(
		ix.es.Search.WithContext(c),
		ix.es.Search.WithIndex(ix.index),
		ix.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("list indexed ids: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source.ID)
	}
	return out, nil
}

// StaleIDs returns the indexed ids that no longer exist in storage.
// indexed must be captured before live so users created in between are kept.
func StaleIDs(indexed, live []int64) []int64 {
	keep := make(map[int64]struct{}, len(live))
	for _, id := range live {
		keep[id] = struct{}{}
	}
	var stale []int64
	for _, id := range indexed {
		if _, ok := keep[id]; !ok {
			stale = append(stale, id)
		}
	}
	slices.Sort(stale)
	return slices.Compact(stale)
}
