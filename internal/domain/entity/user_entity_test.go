package entity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/oksasatya/user-registry/internal/domain/entity"
)

func TestNewUser(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	u, err := entity.NewUser("Juan Pérez", "juan@test.com", created)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.ID() != 0 {
		t.Errorf("expected id 0 before persistence, got %d", u.ID())
	}
	if u.Name() != "Juan Pérez" {
		t.Errorf("expected name 'Juan Pérez', got %q", u.Name())
	}
	if u.Email() != "juan@test.com" {
		t.Errorf("expected email 'juan@test.com', got %q", u.Email())
	}
	if !u.CreationDate().Equal(created) {
		t.Errorf("expected creation date %v, got %v", created, u.CreationDate())
	}
	if u.HasAddress() {
		t.Error("expected new user without address")
	}
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name      string
		userName  string
		email     string
		wantField string
	}{
		{"empty name", "", "a@b.com", "name"},
		{"whitespace name", "   ", "a@b.com", "name"},
		{"empty email", "Ana", "", "email"},
		{"whitespace email", "Ana", "\t ", "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := entity.NewUser(tt.userName, tt.email, time.Now())
			if u != nil {
				t.Errorf("expected nil user, got %+v", u)
			}
			var verr *entity.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, verr.Field)
			}
			if !errors.Is(err, entity.ErrInvalidData) {
				t.Error("expected errors.Is(err, ErrInvalidData)")
			}
		})
	}
}

func TestUser_UpdateName(t *testing.T) {
	u := createTestUser(t)

	if err := u.UpdateName("Ana María Rodríguez"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name() != "Ana María Rodríguez" {
		t.Errorf("expected updated name, got %q", u.Name())
	}

	if err := u.UpdateName("  "); err == nil {
		t.Fatal("expected error for blank name")
	}
	if u.Name() != "Ana María Rodríguez" {
		t.Errorf("failed update must leave name unchanged, got %q", u.Name())
	}
}

func TestUser_UpdateEmail(t *testing.T) {
	u := createTestUser(t)

	if err := u.UpdateEmail(""); err == nil {
		t.Fatal("expected error for empty email")
	}
	if u.Email() != "test@example.com" {
		t.Errorf("failed update must leave email unchanged, got %q", u.Email())
	}

	if err := u.UpdateEmail("new@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email() != "new@example.com" {
		t.Errorf("expected new email, got %q", u.Email())
	}
}

func TestUser_AddressRelationship(t *testing.T) {
	u := entity.ReconstituteUser(7, "John", "john@example.com", time.Now(), nil)
	addr, err := entity.NewAddress(u.ID(), "Av. Corrientes", "1234", "Buenos Aires", "CABA", time.Now())
	if err != nil {
		t.Fatalf("failed to create address: %v", err)
	}

	u.AssignAddress(addr)
	if u.Address() != addr {
		t.Fatal("expected user to hold the same address instance")
	}
	if u.Address().UserID() != u.ID() {
		t.Errorf("expected address user id %d, got %d", u.ID(), u.Address().UserID())
	}

	other, _ := entity.NewAddress(u.ID(), "Calle Falsa", "123", "Córdoba", "Córdoba", time.Now())
	u.UpdateAddress(other)
	if u.Address() != other {
		t.Error("expected address to be replaced")
	}

	u.RemoveAddress()
	if u.HasAddress() {
		t.Error("expected address to be removed")
	}
}

func TestUser_WithID(t *testing.T) {
	u := createTestUser(t)
	if got := u.WithID(42); got != u || u.ID() != 42 {
		t.Errorf("expected same user with id 42, got id %d", u.ID())
	}
}

func createTestUser(t *testing.T) *entity.User {
	t.Helper()

	u, err := entity.NewUser("John Doe", "test@example.com", time.Now().UTC())
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return u
}
