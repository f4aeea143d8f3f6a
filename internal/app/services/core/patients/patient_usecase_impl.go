package patients

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

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		instance := &patientUsecase{
			PatientRepository: patientRepository,
			Log:               logger,
		}
		patientUsecaseInstance = instance
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.CreatePatientRequest) (*models.PatientProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.PatientRepository.FindByIdentityNumber(ctx, request.IdentityNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrPatientAlreadyExists()
	}

	now := time.Now()
	patient := &models.PatientProfile{
		FullName:       request.FullName,
		DateOfBirth:    request.DateOfBirth,
		Gender:         request.Gender,
		Address:        request.Address,
		IdentityNumber: request.IdentityNumber,
		BHYTCode:       request.BHYTCode,
		PhoneNumber:    request.PhoneNumber,
		Email:          request.Email,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	patientID, err := uc.PatientRepository.Insert(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID

	uc.Log.Info("patientUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return patient, nil
}

func (uc *patientUsecase) FindByIdentityNumber(ctx context.Context, identityNumber string) (*models.PatientProfile, error) {
	patient, err := uc.PatientRepository.FindByIdentityNumber(ctx, identityNumber)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient, nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*models.PatientProfile, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient, nil
}

func (uc *patientUsecase) FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.PatientProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, queryParams),
	)

	patients, err := uc.PatientRepository.FindAll(ctx, queryParams)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(patients)),
	)
	return patients, nil
}
