package service

import "context"

// EmailService sends transactional mail. Implementations do not retry;
// a delivery or enqueue failure is returned to the caller.
type EmailService interface {
	SendWelcomeEmail(ctx context.Context, email, name string) error
}
