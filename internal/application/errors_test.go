package application_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/oksasatya/user-registry/internal/application"
	"github.com/oksasatya/user-registry/internal/domain/entity"
)

func TestKindOf(t *testing.T) {
	_, validationErr := entity.NewUser("", "a@example.com", nowForTest())
	tests := []struct {
		name string
		err  error
		want application.ErrorKind
	}{
		{"not found", application.NotFound(7), application.KindNotFound},
		{"wrapped already exists", fmt.Errorf("create: %w", application.AlreadyExists("a@b.c")), application.KindAlreadyExists},
		{"invalid search", application.InvalidSearchCriteria(), application.KindInvalidSearch},
		{"invalid input", application.InvalidInput("missing"), application.KindInvalidInput},
		{"domain validation", validationErr, application.KindInvalidData},
		{"unknown", errors.New("boom"), application.KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := application.KindOf(tt.err); got != tt.want {
				t.Fatalf("KindOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	err := application.NotFound(3)
	if !errors.Is(err, application.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound in chain")
	}
	if err.Error() != "user with id 3 not found: user not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
