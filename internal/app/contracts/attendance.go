package contracts

import (
	"context"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/dto/responses"
)

type AttendanceUsecase interface {
	CheckIn(ctx context.Context, clientIP string, request *requests.CheckInRequest) (*models.Attendance, error)
	CheckOut(ctx context.Context, request *requests.CheckOutRequest) (*responses.Attendance, error)
	FindByEmployee(ctx context.Context, employeeID string, queryParams *requests.QueryParams) ([]responses.Attendance, error)
}

type AttendanceRepository interface {
	Insert(ctx context.Context, attendance *models.Attendance) (string, error)
	FindByScheduleAndEmployee(ctx context.Context, scheduleID, employeeID string) (*models.Attendance, error)
	FindByEmployee(ctx context.Context, employeeID string, queryParams *requests.QueryParams) ([]models.Attendance, error)
	Update(ctx context.Context, attendance *models.Attendance) error
}
