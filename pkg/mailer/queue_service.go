package mailer

import (
	"context"
	"fmt"

	"github.com/oksasatya/user-registry/internal/domain/service"
	"github.com/oksasatya/user-registry/pkg/mailer/templates"
)

// Publisher puts a JSON message on the email queue.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// QueueEmailService hands welcome emails to the email worker through the queue.
type QueueEmailService struct {
	pub     Publisher
	company templates.Company
}

func NewQueueEmailService(pub Publisher, company templates.Company) *QueueEmailService {
	return &QueueEmailService{pub: pub, company: company}
}

func (s *QueueEmailService) SendWelcomeEmail(ctx context.Context, email, name string) error {
	job := EmailJob{
		To:       email,
		Template: templates.Welcome,
		Data:     templates.NewWelcomeData(s.company, name, email),
	}
	if err := s.pub.PublishJSON(ctx, job); err != nil {
		return fmt.Errorf("enqueue welcome email: %w", err)
	}
	return nil
}

var _ service.EmailService = (*QueueEmailService)(nil)
