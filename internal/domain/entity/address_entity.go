package entity

import "time"

// Address is the postal address owned by a single User.
type Address struct {
	id           int64
	userID       int64
	street       string
	number       string
	province     string
	city         string
	creationDate time.Time
}

// NewAddress validates every field; userID must reference a persisted user.
func NewAddress(userID int64, street, number, province, city string, creationDate time.Time) (*Address, error) {
	if userID <= 0 {
		return nil, invalidAddress("userId", "address must belong to a persisted user")
	}
	if isBlank(street) {
		return nil, invalidAddress("street", "street must not be empty")
	}
	if isBlank(number) {
		return nil, invalidAddress("number", "street number must not be empty")
	}
	if isBlank(province) {
		return nil, invalidAddress("province", "province must not be empty")
	}
	if isBlank(city) {
		return nil, invalidAddress("city", "city must not be empty")
	}
	return &Address{
		userID:       userID,
		street:       street,
		number:       number,
		province:     province,
		city:         city,
		creationDate: creationDate,
	}, nil
}

// ReconstituteAddress rebuilds an address from storage.
func ReconstituteAddress(id, userID int64, street, number, province, city string, creationDate time.Time) *Address {
	return &Address{
		id:           id,
		userID:       userID,
		street:       street,
		number:       number,
		province:     province,
		city:         city,
		creationDate: creationDate,
	}
}

func (a *Address) ID() int64               { return a.id }
func (a *Address) UserID() int64           { return a.userID }
func (a *Address) Street() string          { return a.street }
func (a *Address) Number() string          { return a.number }
func (a *Address) Province() string        { return a.province }
func (a *Address) City() string            { return a.city }
func (a *Address) CreationDate() time.Time { return a.creationDate }

// WithID sets the identity assigned by storage.
func (a *Address) WithID(id int64) *Address {
	a.id = id
	return a
}

func (a *Address) UpdateStreet(street string) error {
	if isBlank(street) {
		return invalidAddress("street", "street must not be empty")
	}
	a.street = street
	return nil
}

func (a *Address) UpdateNumber(number string) error {
	if isBlank(number) {
		return invalidAddress("number", "street number must not be empty")
	}
	a.number = number
	return nil
}

func (a *Address) UpdateProvince(province string) error {
	if isBlank(province) {
		return invalidAddress("province", "province must not be empty")
	}
	a.province = province
	return nil
}

func (a *Address) UpdateCity(city string) error {
	if isBlank(city) {
		return invalidAddress("city", "city must not be empty")
	}
	a.city = city
	return nil
}
