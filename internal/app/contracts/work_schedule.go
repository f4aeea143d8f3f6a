package contracts

import (
	"context"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/dto/requests"
)

type WorkScheduleUsecase interface {
	Create(ctx context.Context, request *requests.CreateWorkScheduleRequest) (*models.WorkSchedule, error)
	FindByID(ctx context.Context, scheduleID string) (*models.WorkSchedule, error)
	FindByEmployee(ctx context.Context, employeeID string, queryParams *requests.QueryParams) ([]models.WorkSchedule, error)
}

type WorkScheduleRepository interface {
	Insert(ctx context.Context, schedule *models.WorkSchedule) (string, error)
	FindByID(ctx context.Context, scheduleID string) (*models.WorkSchedule, error)
	FindByEmployee(ctx context.Context, employeeID string, queryParams *requests.QueryParams) ([]models.WorkSchedule, error)
}
