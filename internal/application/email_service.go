package application

import (
	"context"

	"github.com/modelforge/modelforge/pkg/mailer"
)

// EmailService queues outbound mail for the worker to deliver.
type EmailService struct {
	queue Publisher
}

func NewEmailService(queue Publisher) *EmailService {
	return &EmailService{queue: queue}
}

func (s *EmailService) Enqueue(ctx context.Context, job mailer.EmailJob) error {
	return s.queue.PublishJSON(ctx, job)
}
