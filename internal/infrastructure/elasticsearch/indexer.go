package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/user-registry/internal/domain/entity"
	"github.com/oksasatya/user-registry/internal/domain/repository"
)

const requestTimeout = 3 * time.Second

// Indexer maintains the users index.
type Indexer struct {
	es     *elasticsearch.Client
	index  string
	logger *logrus.Logger
}

func NewIndexer(es *elasticsearch.Client, index string, logger *logrus.Logger) *Indexer {
	return &Indexer{es: es, index: index, logger: logger}
}

// EnsureIndex creates the users index with its keyword mapping when missing.
func (ix *Indexer) EnsureIndex(ctx context.Context) error {
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := ix.es.Indices.Exists([]string{ix.index}, ix.es.Indices.Exists.WithContext(c))
	if err != nil {
		return err
	}
	_ = res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = ix.es.Indices.Create(ix.index,
		ix.es.Indices.Create.WithContext(c),
		ix.es.Indices.Create.WithBody(strings.NewReader(usersMapping)),
	)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("create index %s: %s", ix.index, res.Status())
	}
	ix.logger.WithField("index", ix.index).Info("es index created")
	return nil
}

func (ix *Indexer) Index(ctx context.Context, u *entity.User) error {
	b, err := json.Marshal(toDocument(u))
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      ix.index,
		DocumentID: strconv.FormatInt(u.ID(), 10),
		Body:       bytes.NewReader(b),
		Refresh:    "wait_for",
	}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, ix.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index user %d: %s", u.ID(), res.Status())
	}
	return nil
}

func (ix *Indexer) Delete(ctx context.Context, id int64) error {
	req := esapi.DeleteRequest{
		Index:      ix.index,
		DocumentID: strconv.FormatInt(id, 10),
		Refresh:    "wait_for",
	}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, ix.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete user %d from index: %s", id, res.Status())
	}
	return nil
}

func (ix *Indexer) Search(ctx context.Context, criteria repository.SearchCriteria) ([]*entity.User, error) {
	b, err := json.Marshal(buildSearchQuery(criteria))
	if err != nil {
		return nil, err
	}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := ix.es.Search(
		ix.es.Search.WithContext(c),
		ix.es.Search.WithIndex(ix.index),
		ix.es.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search users index: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Total struct {
				Value    int    `json:"value"`
				Relation string `json:"relation"`
			} `json:"total"`
			Hits []struct {
				Source userDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	if total := parsed.Hits.Total; total.Value > len(parsed.Hits.Hits) || total.Relation == "gte" {
		ix.logger.WithFields(logrus.Fields{
			"total":    total.Value,
			"relation": total.Relation,
			"returned": len(parsed.Hits.Hits),
		}).Warn("users search truncated at index result window")
	}
	out := make([]*entity.User, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source.toEntity())
	}
	return out, nil
}
