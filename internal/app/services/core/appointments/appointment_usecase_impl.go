package appointments

import (
	"context"
	"fmt"
	"hospicare-service/internal/app/config"
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

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	QueueRepository       contracts.QueueRepository
	PatientRepository     contracts.PatientRepository
	LockService           contracts.LockerService
	MailerService         contracts.MailerService
	SessionService        contracts.SessionService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	queueRepository contracts.QueueRepository,
	patientRepository contracts.PatientRepository,
	lockService contracts.LockerService,
	mailerService contracts.MailerService,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			QueueRepository:       queueRepository,
			PatientRepository:     patientRepository,
			LockService:           lockService,
			MailerService:         mailerService,
			SessionService:        sessionService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	scheduledAt, err := time.Parse(time.RFC3339, request.ScheduledAt)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientProfileID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	now := time.Now()
	appointment := &models.Appointment{
		PatientProfileID: request.PatientProfileID,
		DoctorID:         request.DoctorID,
		DepartmentID:     request.DepartmentID,
		ScheduledAt:      scheduledAt,
		Symptom:          request.Symptom,
		BHYTCode:         request.BHYTCode,
		Type:             models.AppointmentType(request.Type),
		Status:           models.AppointmentPendingConfirmation,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	appointmentID, err := uc.AppointmentRepository.Insert(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.ID = appointmentID

	uc.Log.Info("appointmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, sessionData string, queryParams *requests.QueryParams) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	// Patients only ever see their own appointments; doctors default to
	// appointments assigned to them.
	if session.IsPatient() {
		queryParams.PatientProfileID = session.PatientID
	} else if session.IsDoctor() && queryParams.DoctorID == "" {
		queryParams.DoctorID = session.EmployeeID
	}

	appointments, err := uc.AppointmentRepository.FindAll(ctx, queryParams)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(appointments)),
	)
	return appointments, nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	return appointment, nil
}

// Transition applies one step of the appointment lifecycle. The transition
// table in models is authoritative; a target the current status does not allow
// is rejected regardless of who asks.
func (uc *appointmentUsecase) Transition(ctx context.Context, appointmentID string, target models.AppointmentStatus) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Transition called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingTargetStatusKey, string(target)),
	)

	if !target.IsValid() {
		return nil, exceptions.ErrIllegalStatusTransition("", string(target))
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	if !appointment.Status.CanTransitionTo(target) {
		uc.Log.Info("appointmentUsecase.Transition rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentStatusKey, string(appointment.Status)),
			zap.String(constvars.LoggingTargetStatusKey, string(target)),
		)
		return nil, exceptions.ErrIllegalStatusTransition(string(appointment.Status), string(target))
	}

	// waiting_for_doctor is only reachable through PushToQueue since it must
	// create the queue entry alongside the status write.
	if target == models.AppointmentWaitingForDoctor {
		return nil, exceptions.ErrIllegalStatusTransition(string(appointment.Status), string(target))
	}

	if err := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, target); err != nil {
		return nil, err
	}
	appointment.Status = target
	appointment.UpdatedAt = time.Now()

	// Starting the visit consumes the queue slot. The entry keeps its position;
	// only the status flips, so the day's numbering never shifts.
	if target == models.AppointmentInProgress {
		if err := uc.QueueRepository.UpdateStatusByAppointment(ctx, appointmentID, models.QueueEntryServed); err != nil {
			uc.Log.Error("appointmentUsecase.Transition error marking queue entry served",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
				zap.Error(err),
			)
		}
	}

	uc.notifyPatient(ctx, appointment, target)

	uc.Log.Info("appointmentUsecase.Transition succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingAppointmentStatusKey, string(target)),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) PushToQueue(ctx context.Context, appointmentID string, request *requests.PushToQueueRequest) (*responses.PushToQueueResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.PushToQueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	if !appointment.Status.CanTransitionTo(models.AppointmentWaitingForDoctor) {
		return nil, exceptions.ErrIllegalStatusTransition(string(appointment.Status), string(models.AppointmentWaitingForDoctor))
	}
	if appointment.DoctorID == "" || appointment.DepartmentID == "" {
		return nil, exceptions.ErrAppointmentMissingDoctor()
	}
	if request.Room == "" {
		return nil, exceptions.ErrAppointmentMissingRoom()
	}

	queueDate := appointment.ScheduledAt.Format(utils.DateLayoutYYYYMMDD)
	lockKey := fmt.Sprintf(constvars.QueueLockKeyFormat, request.Room, queueDate)

	lockValue, err := uc.acquireQueueLock(ctx, lockKey)
	if err != nil {
		return nil, err
	}
	defer uc.LockService.Unlock(ctx, lockKey, lockValue)

	count, err := uc.QueueRepository.CountByRoomAndDate(ctx, request.Room, queueDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry := &models.QueueEntry{
		Position:         int(count) + 1,
		AppointmentID:    appointment.ID,
		PatientProfileID: appointment.PatientProfileID,
		DoctorID:         appointment.DoctorID,
		Room:             request.Room,
		Date:             queueDate,
		Status:           models.QueueEntryQueued,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	entryID, err := uc.QueueRepository.Insert(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = entryID

	// The entry and the status flip are two writes; undo the first if the
	// second fails so a crash never leaves a queued entry for a still
	// confirmed appointment.
	if err := uc.AppointmentRepository.UpdateStatusAndRoom(ctx, appointmentID, models.AppointmentWaitingForDoctor, request.Room); err != nil {
		if delErr := uc.QueueRepository.Delete(ctx, entryID); delErr != nil {
			uc.Log.Error("appointmentUsecase.PushToQueue compensation delete failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
				zap.Error(delErr),
			)
		}
		return nil, err
	}

	appointment.Status = models.AppointmentWaitingForDoctor
	appointment.Room = request.Room
	appointment.UpdatedAt = now

	uc.Log.Info("appointmentUsecase.PushToQueue succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingQueueRoomKey, request.Room),
		zap.String(constvars.LoggingQueueDateKey, queueDate),
		zap.Int(constvars.LoggingQueuePositionKey, entry.Position),
	)
	return &responses.PushToQueueResponse{
		Appointment: *appointment,
		QueueEntry:  *entry,
	}, nil
}

func (uc *appointmentUsecase) acquireQueueLock(ctx context.Context, lockKey string) (string, error) {
	expiry := time.Duration(constvars.QueueLockExpirySeconds) * time.Second
	for attempt := 0; attempt < constvars.QueueLockRetryCount; attempt++ {
		acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, expiry)
		if err != nil {
			return "", err
		}
		if acquired {
			return lockValue, nil
		}

		select {
		case <-ctx.Done():
			return "", exceptions.ErrServerDeadlineExceeded(ctx.Err())
		case <-time.After(constvars.QueueLockRetryDelayMs * time.Millisecond):
		}
	}
	return "", exceptions.ErrQueueBusy(lockKey)
}

// notifyPatient emails the patient about confirm/reject outcomes. Delivery is
// best-effort; a failed publish is logged and never fails the transition.
func (uc *appointmentUsecase) notifyPatient(ctx context.Context, appointment *models.Appointment, target models.AppointmentStatus) {
	if target != models.AppointmentConfirmed && target != models.AppointmentRejected {
		return
	}

	patient, err := uc.PatientRepository.FindByID(ctx, appointment.PatientProfileID)
	if err != nil || patient == nil || patient.Email == "" {
		return
	}

	var subject, body string
	switch target {
	case models.AppointmentConfirmed:
		subject = "Your appointment has been confirmed"
		body = fmt.Sprintf("Dear %s, your appointment on %s has been confirmed.", patient.FullName, appointment.ScheduledAt.Format("02-01-2006 15:04"))
	case models.AppointmentRejected:
		subject = "Your appointment could not be confirmed"
		body = fmt.Sprintf("Dear %s, unfortunately your appointment on %s was rejected. Please book another time.", patient.FullName, appointment.ScheduledAt.Format("02-01-2006 15:04"))
	}

	if err := uc.MailerService.SendEmail(ctx, &requests.EmailPayload{
		ReceiverEmail: patient.Email,
		Subject:       subject,
		Body:          body,
	}); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("appointmentUsecase.notifyPatient error publishing email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}
