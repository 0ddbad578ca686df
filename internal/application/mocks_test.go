package application_test

import (
	"context"
	"sync"
	"time"

	"github.com/oksasatya/user-registry/internal/application"
	"github.com/oksasatya/user-registry/internal/domain/entity"
	repo "github.com/oksasatya/user-registry/internal/domain/repository"
)

// memUsers is an in-memory UserRepository. Hooks override individual methods.
type memUsers struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*entity.User

	addFn    func(ctx context.Context, u *entity.User) (*entity.User, error)
	updateFn func(ctx context.Context, u *entity.User) error
	searchFn func(ctx context.Context, c repo.SearchCriteria) ([]*entity.User, error)

	adds, updates, deletes, emailLookups int
}

func newMemUsers() *memUsers {
	return &memUsers{rows: map[int64]*entity.User{}}
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.emailLookups++
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.rows {
		if u.Email() == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (m *memUsers) Add(ctx context.Context, u *entity.User) (*entity.User, error) {
	m.adds++
	if m.addFn != nil {
		return m.addFn(ctx, u)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	u.WithID(m.nextID)
	m.rows[u.ID()] = cloneUser(u)
	return u, nil
}

func (m *memUsers) Update(ctx context.Context, u *entity.User) error {
	m.updates++
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[u.ID()] = cloneUser(u)
	return nil
}

func (m *memUsers) Delete(_ context.Context, id int64) error {
	m.deletes++
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

func (m *memUsers) Search(ctx context.Context, c repo.SearchCriteria) ([]*entity.User, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, c)
	}
	return nil, nil
}

// attach stores an address on the persisted row, the way the address table would.
func (m *memUsers) attach(a *entity.Address) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.rows[a.UserID()]; ok {
		u.AssignAddress(a)
	}
}

func (m *memUsers) seed(name, email string, addr *application.AddressInput) *entity.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := m.nextID
	var a *entity.Address
	if addr != nil {
		a = entity.ReconstituteAddress(id*10, id, addr.Street, addr.Number, addr.Province, addr.City, time.Now())
	}
	u := entity.ReconstituteUser(id, name, email, time.Now(), a)
	m.rows[id] = u
	return cloneUser(u)
}

func cloneUser(u *entity.User) *entity.User {
	var addr *entity.Address
	if a := u.Address(); a != nil {
		addr = entity.ReconstituteAddress(a.ID(), a.UserID(), a.Street(), a.Number(), a.Province(), a.City(), a.CreationDate())
	}
	return entity.ReconstituteUser(u.ID(), u.Name(), u.Email(), u.CreationDate(), addr)
}

type mockAddresses struct {
	users  *memUsers
	nextID int64

	addFn func(ctx context.Context, a *entity.Address) (*entity.Address, error)

	added   []*entity.Address
	deleted []int64
}

func (m *mockAddresses) GetByID(context.Context, int64) (*entity.Address, error)     { return nil, nil }
func (m *mockAddresses) GetByUserID(context.Context, int64) (*entity.Address, error) { return nil, nil }
func (m *mockAddresses) Update(context.Context, *entity.Address) error               { return nil }

func (m *mockAddresses) Add(ctx context.Context, a *entity.Address) (*entity.Address, error) {
	if m.addFn != nil {
		return m.addFn(ctx, a)
	}
	m.nextID++
	a.WithID(100 + m.nextID)
	m.added = append(m.added, a)
	if m.users != nil {
		m.users.attach(a)
	}
	return a, nil
}

func (m *mockAddresses) Delete(_ context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockEmail struct {
	err  error
	sent []string
}

func (m *mockEmail) SendWelcomeEmail(_ context.Context, email, name string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, name+" <"+email+">")
	return nil
}

type mockCache struct {
	views       map[int64]*application.UserResponse
	getErr      error
	invalidated []int64
}

func newMockCache() *mockCache {
	return &mockCache{views: map[int64]*application.UserResponse{}}
}

func (m *mockCache) Get(_ context.Context, id int64) (*application.UserResponse, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.views[id]
	return v, ok, nil
}

func (m *mockCache) Set(_ context.Context, id int64, v *application.UserResponse) error {
	m.views[id] = v
	return nil
}

func (m *mockCache) Invalidate(_ context.Context, id int64) error {
	delete(m.views, id)
	m.invalidated = append(m.invalidated, id)
	return nil
}

func strPtr(s string) *string { return &s }

func nowForTest() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
