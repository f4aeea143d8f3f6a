package medicinechecks

import (
	"context"
	"fmt"
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

type medicineCheckUsecase struct {
	CheckRepository    contracts.MedicineCheckRepository
	MedicineRepository contracts.MedicineRepository
	SessionService     contracts.SessionService
	LockService        contracts.LockerService
	Log                *zap.Logger
}

var (
	medicineCheckUsecaseInstance contracts.MedicineCheckUsecase
	onceMedicineCheckUsecase     sync.Once
)

func NewMedicineCheckUsecase(
	checkRepository contracts.MedicineCheckRepository,
	medicineRepository contracts.MedicineRepository,
	sessionService contracts.SessionService,
	lockService contracts.LockerService,
	logger *zap.Logger,
) contracts.MedicineCheckUsecase {
	onceMedicineCheckUsecase.Do(func() {
		instance := &medicineCheckUsecase{
			CheckRepository:    checkRepository,
			MedicineRepository: medicineRepository,
			SessionService:     sessionService,
			LockService:        lockService,
			Log:                logger,
		}
		medicineCheckUsecaseInstance = instance
	})
	return medicineCheckUsecaseInstance
}

func (uc *medicineCheckUsecase) Create(ctx context.Context, sessionData string, request *requests.CreateMedicineCheckRequest) (*models.MedicineCheck, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineCheckUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	checkDate := time.Now()
	if request.CheckDate != "" {
		checkDate, err = utils.ParseDateYYYYMMDD(request.CheckDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
	}

	now := time.Now()
	check := &models.MedicineCheck{
		CheckCode:     utils.GenerateCheckCode(checkDate),
		SupplierName:  request.SupplierName,
		InvoiceNumber: request.InvoiceNumber,
		CheckDate:     checkDate,
		Status:        models.CheckNotChecked,
		InspectorID:   session.EmployeeID,
		Details:       []models.MedicineCheckDetail{},
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	checkID, err := uc.CheckRepository.Insert(ctx, check)
	if err != nil {
		return nil, err
	}
	check.ID = checkID

	uc.Log.Info("medicineCheckUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineCheckIDKey, checkID),
		zap.String(constvars.LoggingCheckCodeKey, check.CheckCode),
	)
	return check, nil
}

func (uc *medicineCheckUsecase) FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.MedicineCheck, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineCheckUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, queryParams),
	)

	checks, err := uc.CheckRepository.FindAll(ctx, queryParams)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("medicineCheckUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(checks)),
	)
	return checks, nil
}

func (uc *medicineCheckUsecase) FindByID(ctx context.Context, checkID string) (*models.MedicineCheck, error) {
	check, err := uc.CheckRepository.FindByID(ctx, checkID)
	if err != nil {
		return nil, err
	}
	if check == nil {
		return nil, exceptions.ErrMedicineCheckNotFound(nil)
	}
	return check, nil
}

func (uc *medicineCheckUsecase) AddDetail(ctx context.Context, checkID string, request *requests.MedicineCheckDetailRequest) (*models.MedicineCheck, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineCheckUsecase.AddDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineCheckIDKey, checkID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	check, err := uc.CheckRepository.FindByID(ctx, checkID)
	if err != nil {
		return nil, err
	}
	if check == nil {
		return nil, exceptions.ErrMedicineCheckNotFound(nil)
	}
	if check.IsCompleted() {
		return nil, exceptions.ErrMedicineCheckCompleted(checkID)
	}
	for _, detail := range check.Details {
		if detail.BatchNumber == request.BatchNumber {
			return nil, exceptions.ErrMedicineCheckDetailExists(request.BatchNumber)
		}
	}

	detail, err := buildDetail(request)
	if err != nil {
		return nil, err
	}
	check.Details = append(check.Details, *detail)

	if err := uc.CheckRepository.Update(ctx, check); err != nil {
		return nil, err
	}

	uc.Log.Info("medicineCheckUsecase.AddDetail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineCheckIDKey, checkID),
		zap.Int(constvars.LoggingResponseCountKey, len(check.Details)),
	)
	return check, nil
}

func (uc *medicineCheckUsecase) UpdateDetail(ctx context.Context, checkID, batchNumber string, request *requests.MedicineCheckDetailRequest) (*models.MedicineCheck, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineCheckUsecase.UpdateDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineCheckIDKey, checkID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	check, err := uc.CheckRepository.FindByID(ctx, checkID)
	if err != nil {
		return nil, err
	}
	if check == nil {
		return nil, exceptions.ErrMedicineCheckNotFound(nil)
	}
	if check.IsCompleted() {
		return nil, exceptions.ErrMedicineCheckCompleted(checkID)
	}

	index := -1
	for i, detail := range check.Details {
		if detail.BatchNumber == batchNumber {
			index = i
			continue
		}
		if detail.BatchNumber == request.BatchNumber {
			return nil, exceptions.ErrMedicineCheckDetailExists(request.BatchNumber)
		}
	}
	if index < 0 {
		return nil, exceptions.ErrMedicineCheckDetailNotFound(batchNumber)
	}

	detail, err := buildDetail(request)
	if err != nil {
		return nil, err
	}
	check.Details[index] = *detail

	if err := uc.CheckRepository.Update(ctx, check); err != nil {
		return nil, err
	}

	uc.Log.Info("medicineCheckUsecase.UpdateDetail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineCheckIDKey, checkID),
	)
	return check, nil
}

// Complete reconciles declared against counted quantities and freezes the
// check. The per-check lock stops two pharmacists from completing the same
// check concurrently.
func (uc *medicineCheckUsecase) Complete(ctx context.Context, checkID string) (*models.MedicineCheck, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineCheckUsecase.Complete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineCheckIDKey, checkID),
	)

	lockKey := fmt.Sprintf(constvars.MedicineCheckLockKeyFormat, checkID)
	expiry := time.Duration(constvars.QueueLockExpirySeconds) * time.Second
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, expiry)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrMedicineCheckBusy(lockKey)
	}
	defer uc.LockService.Unlock(ctx, lockKey, lockValue)

	check, err := uc.CheckRepository.FindByID(ctx, checkID)
	if err != nil {
		return nil, err
	}
	if check == nil {
		return nil, exceptions.ErrMedicineCheckNotFound(nil)
	}
	if check.IsCompleted() {
		return nil, exceptions.ErrMedicineCheckCompleted(checkID)
	}
	if len(check.Details) == 0 {
		return nil, exceptions.ErrMedicineCheckNoItems()
	}

	hasDiscrepancy := false
	for i := range check.Details {
		detail := &check.Details[i]
		detail.Discrepancy = detail.ActualQuantity - detail.DeclaredQuantity
		detail.HasDiscrepancy = detail.Discrepancy != 0
		if detail.HasDiscrepancy {
			hasDiscrepancy = true
		}
	}

	if hasDiscrepancy {
		check.Status = models.CheckDiscrepancy
	} else {
		check.Status = models.CheckChecked
	}

	if err := uc.CheckRepository.Update(ctx, check); err != nil {
		return nil, err
	}

	uc.Log.Info("medicineCheckUsecase.Complete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineCheckIDKey, checkID),
		zap.String("check_status", string(check.Status)),
	)
	return check, nil
}

// Promote registers selected batches of a completed check as inventory rows,
// using the counted quantity rather than the declared one.
func (uc *medicineCheckUsecase) Promote(ctx context.Context, checkID string, request *requests.PromoteCheckDetailsRequest) ([]models.Medicine, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineCheckUsecase.Promote called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineCheckIDKey, checkID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	check, err := uc.CheckRepository.FindByID(ctx, checkID)
	if err != nil {
		return nil, err
	}
	if check == nil {
		return nil, exceptions.ErrMedicineCheckNotFound(nil)
	}
	if !check.IsCompleted() {
		return nil, exceptions.ErrMedicineCheckNotCompleted(checkID)
	}

	detailsByBatch := make(map[string]models.MedicineCheckDetail, len(check.Details))
	for _, detail := range check.Details {
		detailsByBatch[detail.BatchNumber] = detail
	}

	now := time.Now()
	medicines := make([]models.Medicine, 0, len(request.BatchNumbers))
	for _, batchNumber := range request.BatchNumbers {
		detail, ok := detailsByBatch[batchNumber]
		if !ok {
			return nil, exceptions.ErrMedicineCheckDetailNotFound(batchNumber)
		}

		medicine := models.Medicine{
			Code:           detail.MedicineCode,
			Name:           detail.MedicineName,
			Quantity:       detail.ActualQuantity,
			UnitPrice:      detail.ImportPrice,
			Unit:           detail.Unit,
			ExpirationDate: detail.ExpirationDate,
			SupplierName:   check.SupplierName,
			IsActive:       true,
			TimeModel: models.TimeModel{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		medicineID, err := uc.MedicineRepository.Insert(ctx, &medicine)
		if err != nil {
			return nil, err
		}
		medicine.ID = medicineID
		medicines = append(medicines, medicine)
	}

	uc.Log.Info("medicineCheckUsecase.Promote succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineCheckIDKey, checkID),
		zap.Int(constvars.LoggingResponseCountKey, len(medicines)),
	)
	return medicines, nil
}

func buildDetail(request *requests.MedicineCheckDetailRequest) (*models.MedicineCheckDetail, error) {
	expirationDate, err := utils.ParseDateYYYYMMDD(request.ExpirationDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	return &models.MedicineCheckDetail{
		MedicineCode:     request.MedicineCode,
		MedicineName:     request.MedicineName,
		BatchNumber:      request.BatchNumber,
		ExpirationDate:   expirationDate,
		DeclaredQuantity: request.DeclaredQuantity,
		ActualQuantity:   request.ActualQuantity,
		Unit:             request.Unit,
		ImportPrice:      request.ImportPrice,
		Note:             request.Note,
	}, nil
}
