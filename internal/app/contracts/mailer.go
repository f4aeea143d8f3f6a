package contracts

import (
	"context"
	"hospicare-service/internal/pkg/dto/requests"
)

type MailerService interface {
	// SendEmail publishes the payload to the mailer queue; delivery is
	// asynchronous and best-effort.
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}
