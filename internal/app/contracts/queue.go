package contracts

import (
	"context"
	"hospicare-service/internal/app/models"
)

type QueueUsecase interface {
	FindByRoomAndDate(ctx context.Context, room, date string) ([]models.QueueEntry, error)
}

type QueueRepository interface {
	Insert(ctx context.Context, entry *models.QueueEntry) (string, error)
	Delete(ctx context.Context, entryID string) error
	UpdateStatusByAppointment(ctx context.Context, appointmentID string, status models.QueueEntryStatus) error
	CountByRoomAndDate(ctx context.Context, room, date string) (int64, error)
	FindByRoomAndDate(ctx context.Context, room, date string) ([]models.QueueEntry, error)
}
