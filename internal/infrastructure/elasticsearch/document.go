package elasticsearch

import (
	"time"

	"github.com/oksasatya/user-registry/internal/domain/entity"
)

type userDocument struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	CreationDate time.Time        `json:"creation_date"`
	Address      *addressDocument `json:"address,omitempty"`
}

type addressDocument struct {
	ID           int64     `json:"id"`
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Province     string    `json:"province"`
	City         string    `json:"city"`
	CreationDate time.Time `json:"creation_date"`
}

func toDocument(u *entity.User) userDocument {
	doc := userDocument{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		CreationDate: u.CreationDate(),
	}
	if a := u.Address(); a != nil {
		doc.Address = &addressDocument{
			ID:           a.ID(),
			Street:       a.Street(),
			Number:       a.Number(),
			Province:     a.Province(),
			City:         a.City(),
			CreationDate: a.CreationDate(),
		}
	}
	return doc
}

func (d userDocument) toEntity() *entity.User {
	var addr *entity.Address
	if a := d.Address; a != nil {
		addr = entity.ReconstituteAddress(a.ID, d.ID, a.Street, a.Number, a.Province, a.City, a.CreationDate)
	}
	return entity.ReconstituteUser(d.ID, d.Name, d.Email, d.CreationDate, addr)
}

// usersMapping keeps every searchable field as keyword so wildcard queries
// behave like a case-sensitive substring match.
const usersMapping = `{
  "mappings": {
    "properties": {
      "id":            {"type": "long"},
      "name":          {"type": "keyword"},
      "email":         {"type": "keyword"},
      "creation_date": {"type": "date"},
      "address": {
        "properties": {
          "id":            {"type": "long"},
          "street":        {"type": "keyword"},
          "number":        {"type": "keyword"},
          "province":      {"type": "keyword"},
          "city":          {"type": "keyword"},
          "creation_date": {"type": "date"}
        }
      }
    }
  }
}`
