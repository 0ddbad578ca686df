package validation

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

type addressPayload struct {
	Street string `json:"street" binding:"required,notblank,max=150"`
	Number string `json:"number" binding:"required,streetnumber,max=20"`
}

type userPayload struct {
	Name    string          `json:"name" binding:"required,personname,max=100"`
	Email   string          `json:"email" binding:"required,email,max=200"`
	Address *addressPayload `json:"address"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	Register(v)
	return v
}

func TestRegister_CustomTags(t *testing.T) {
	v := newValidator()
	tests := []struct {
		name    string
		payload userPayload
		fields  []string
	}{
		{"valid", userPayload{Name: "José Ñúñez Peña", Email: "jose@example.com", Address: &addressPayload{Street: "Mayor", Number: "12B/3"}}, nil},
		{"digits in name", userPayload{Name: "R2D2", Email: "r@example.com"}, []string{"name"}},
		{"apostrophe in name", userPayload{Name: "O'Brien", Email: "o@example.com"}, []string{"name"}},
		{"dots and hyphen in name", userPayload{Name: "J.-P. Sartre", Email: "j@example.com"}, []string{"name"}},
		{"bad email", userPayload{Name: "Ana", Email: "nope"}, []string{"email"}},
		{"blank street and bad number", userPayload{Name: "Ana", Email: "a@example.com", Address: &addressPayload{Street: "   ", Number: "#1"}}, []string{"address.street", "address.number"}},
		{"name too long", userPayload{Name: strings.Repeat("a", 101), Email: "a@example.com"}, []string{"name"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.payload)
			if len(tt.fields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			details := ToDetails(err)
			if len(details) != len(tt.fields) {
				t.Fatalf("details = %v, want fields %v", details, tt.fields)
			}
			for _, f := range tt.fields {
				if _, ok := details[f]; !ok {
					t.Fatalf("missing %q in %v", f, details)
				}
			}
		})
	}
}

func TestToDetails_Payload(t *testing.T) {
	if got := ToDetails(io.EOF)["payload"]; got != "request body is required" {
		t.Fatalf("EOF -> %q", got)
	}
	if got := ToDetails(errors.New("x"))["payload"]; got != "invalid payload" {
		t.Fatalf("fallback -> %q", got)
	}
	if ToDetails(nil) != nil {
		t.Fatalf("nil error must produce nil details")
	}
}
