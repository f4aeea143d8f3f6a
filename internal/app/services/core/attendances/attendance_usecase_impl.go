package attendances

import (
	"context"
	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/dto/responses"
	"hospicare-service/internal/pkg/exceptions"
	"hospicare-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type attendanceUsecase struct {
	AttendanceRepository contracts.AttendanceRepository
	ScheduleRepository   contracts.WorkScheduleRepository
	Location             *time.Location
	Log                  *zap.Logger
}

var (
	attendanceUsecaseInstance contracts.AttendanceUsecase
	onceAttendanceUsecase     sync.Once
)

func NewAttendanceUsecase(
	attendanceRepository contracts.AttendanceRepository,
	scheduleRepository contracts.WorkScheduleRepository,
	location *time.Location,
	logger *zap.Logger,
) contracts.AttendanceUsecase {
	onceAttendanceUsecase.Do(func() {
		instance := &attendanceUsecase{
			AttendanceRepository: attendanceRepository,
			ScheduleRepository:   scheduleRepository,
			Location:             location,
			Log:                  logger,
		}
		attendanceUsecaseInstance = instance
	})
	return attendanceUsecaseInstance
}

func (uc *attendanceUsecase) CheckIn(ctx context.Context, clientIP string, request *requests.CheckInRequest) (*models.Attendance, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("attendanceUsecase.CheckIn called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, request.EmployeeID),
		zap.String(constvars.LoggingScheduleIDKey, request.ScheduleID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	schedule, err := uc.ScheduleRepository.FindByID(ctx, request.ScheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil || schedule.EmployeeID != request.EmployeeID {
		return nil, exceptions.ErrScheduleNotFound(nil)
	}

	existing, err := uc.AttendanceRepository.FindByScheduleAndEmployee(ctx, request.ScheduleID, request.EmployeeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrAlreadyCheckedIn()
	}

	if clientIP == "" {
		clientIP = constvars.AttendanceUnknownIP
	}
	var location *models.Geolocation
	if request.Latitude != nil && request.Longitude != nil {
		location = &models.Geolocation{
			Latitude:  *request.Latitude,
			Longitude: *request.Longitude,
		}
	}

	now := time.Now().In(uc.Location)
	attendance := &models.Attendance{
		ScheduleID:      request.ScheduleID,
		EmployeeID:      request.EmployeeID,
		CheckInAt:       &now,
		CheckInIP:       clientIP,
		CheckInLocation: location,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	attendanceID, err := uc.AttendanceRepository.Insert(ctx, attendance)
	if err != nil {
		return nil, err
	}
	attendance.ID = attendanceID

	uc.Log.Info("attendanceUsecase.CheckIn succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, request.EmployeeID),
		zap.String(constvars.LoggingRemoteAddrKey, clientIP),
	)
	return attendance, nil
}

func (uc *attendanceUsecase) CheckOut(ctx context.Context, request *requests.CheckOutRequest) (*responses.Attendance, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("attendanceUsecase.CheckOut called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, request.EmployeeID),
		zap.String(constvars.LoggingScheduleIDKey, request.ScheduleID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	attendance, err := uc.AttendanceRepository.FindByScheduleAndEmployee(ctx, request.ScheduleID, request.EmployeeID)
	if err != nil {
		return nil, err
	}
	if attendance == nil {
		return nil, exceptions.ErrAttendanceNotFound(nil)
	}
	if attendance.CheckOutAt != nil {
		return nil, exceptions.ErrAlreadyCheckedOut()
	}

	now := time.Now().In(uc.Location)
	attendance.CheckOutAt = &now

	if err := uc.AttendanceRepository.Update(ctx, attendance); err != nil {
		return nil, err
	}

	schedule, err := uc.ScheduleRepository.FindByID(ctx, request.ScheduleID)
	if err != nil {
		return nil, err
	}

	status := DeriveStatus(attendance, schedule, now, uc.Location)
	uc.Log.Info("attendanceUsecase.CheckOut succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, request.EmployeeID),
		zap.String("attendance_status", string(status)),
	)
	return &responses.Attendance{Record: *attendance, Status: status}, nil
}

func (uc *attendanceUsecase) FindByEmployee(ctx context.Context, employeeID string, queryParams *requests.QueryParams) ([]responses.Attendance, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("attendanceUsecase.FindByEmployee called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
	)

	attendances, err := uc.AttendanceRepository.FindByEmployee(ctx, employeeID, queryParams)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(uc.Location)
	results := make([]responses.Attendance, 0, len(attendances))
	for i := range attendances {
		attendance := attendances[i]
		schedule, err := uc.ScheduleRepository.FindByID(ctx, attendance.ScheduleID)
		if err != nil {
			return nil, err
		}
		results = append(results, responses.Attendance{
			Record: attendance,
			Status: DeriveStatus(&attendance, schedule, now, uc.Location),
		})
	}

	uc.Log.Info("attendanceUsecase.FindByEmployee succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(results)),
	)
	return results, nil
}
