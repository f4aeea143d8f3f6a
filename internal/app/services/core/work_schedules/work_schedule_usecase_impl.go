package workschedules

import (
	"context"
	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/exceptions"
	"hospicare-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type workScheduleUsecase struct {
	ScheduleRepository contracts.WorkScheduleRepository
	Location           *time.Location
	Log                *zap.Logger
}

var (
	workScheduleUsecaseInstance contracts.WorkScheduleUsecase
	onceWorkScheduleUsecase     sync.Once
)

func NewWorkScheduleUsecase(
	scheduleRepository contracts.WorkScheduleRepository,
	location *time.Location,
	logger *zap.Logger,
) contracts.WorkScheduleUsecase {
	onceWorkScheduleUsecase.Do(func() {
		instance := &workScheduleUsecase{
			ScheduleRepository: scheduleRepository,
			Location:           location,
			Log:                logger,
		}
		workScheduleUsecaseInstance = instance
	})
	return workScheduleUsecaseInstance
}

func (uc *workScheduleUsecase) Create(ctx context.Context, request *requests.CreateWorkScheduleRequest) (*models.WorkSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("workScheduleUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, request.EmployeeID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if _, err := utils.ParseDateYYYYMMDD(request.Date); err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	slots := make([]models.TimeSlot, 0, len(request.TimeSlots))
	for _, slot := range request.TimeSlots {
		if _, _, err := utils.SlotBounds(request.Date, slot.StartTime, slot.EndTime, uc.Location); err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		slots = append(slots, models.TimeSlot{
			Shift:     models.ShiftName(slot.Shift),
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	now := time.Now()
	schedule := &models.WorkSchedule{
		EmployeeID: request.EmployeeID,
		Date:       request.Date,
		TimeSlots:  slots,
		Room:       request.Room,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	scheduleID, err := uc.ScheduleRepository.Insert(ctx, schedule)
	if err != nil {
		return nil, err
	}
	schedule.ID = scheduleID

	uc.Log.Info("workScheduleUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)
	return schedule, nil
}

func (uc *workScheduleUsecase) FindByID(ctx context.Context, scheduleID string) (*models.WorkSchedule, error) {
	schedule, err := uc.ScheduleRepository.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.ErrScheduleNotFound(nil)
	}
	return schedule, nil
}

func (uc *workScheduleUsecase) FindByEmployee(ctx context.Context, employeeID string, queryParams *requests.QueryParams) ([]models.WorkSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("workScheduleUsecase.FindByEmployee called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
	)

	schedules, err := uc.ScheduleRepository.FindByEmployee(ctx, employeeID, queryParams)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("workScheduleUsecase.FindByEmployee succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(schedules)),
	)
	return schedules, nil
}
