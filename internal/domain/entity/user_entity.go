package entity

import (
	"time"
)

// User is the aggregate root for the registry.
// It exclusively owns at most one Address; fields change only through its methods.
type User struct {
	id           int64
	name         string
	email        string
	creationDate time.Time
	address      *Address
}

// NewUser builds a not-yet-persisted user (id 0).
// Email uniqueness is not checked here, the entity has no view of other users.
func NewUser(name, email string, creationDate time.Time) (*User, error) {
	if isBlank(name) {
		return nil, invalidUser("name", "name must not be empty")
	}
	if isBlank(email) {
		return nil, invalidUser("email", "email must not be empty")
	}
	return &User{
		name:         name,
		email:        email,
		creationDate: creationDate,
	}, nil
}

// ReconstituteUser rebuilds a user from storage without re-running validation.
func ReconstituteUser(id int64, name, email string, creationDate time.Time, address *Address) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		creationDate: creationDate,
		address:      address,
	}
}

func (u *User) ID() int64               { return u.id }
func (u *User) Name() string            { return u.name }
func (u *User) Email() string           { return u.email }
func (u *User) CreationDate() time.Time { return u.creationDate }
func (u *User) Address() *Address       { return u.address }
func (u *User) HasAddress() bool        { return u.address != nil }

// WithID sets the identity assigned by storage. Only repositories call it.
func (u *User) WithID(id int64) *User {
	u.id = id
	return u
}

func (u *User) UpdateName(name string) error {
	if isBlank(name) {
		return invalidUser("name", "name must not be empty")
	}
	u.name = name
	return nil
}

func (u *User) UpdateEmail(email string) error {
	if isBlank(email) {
		return invalidUser("email", "email must not be empty")
	}
	u.email = email
	return nil
}

// AssignAddress attaches a freshly created address.
func (u *User) AssignAddress(a *Address) {
	u.address = a
}

// UpdateAddress replaces the address reference; nil detaches it.
func (u *User) UpdateAddress(a *Address) {
	u.address = a
}

func (u *User) RemoveAddress() {
	u.address = nil
}
