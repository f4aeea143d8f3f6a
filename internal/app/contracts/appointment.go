package contracts

import (
	"context"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error)
	FindAll(ctx context.Context, sessionData string, queryParams *requests.QueryParams) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	Transition(ctx context.Context, appointmentID string, target models.AppointmentStatus) (*models.Appointment, error)
	PushToQueue(ctx context.Context, appointmentID string, request *requests.PushToQueueRequest) (*responses.PushToQueueResponse, error)
}

type AppointmentRepository interface {
	Insert(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) error
	UpdateStatusAndRoom(ctx context.Context, appointmentID string, status models.AppointmentStatus, room string) error
}
