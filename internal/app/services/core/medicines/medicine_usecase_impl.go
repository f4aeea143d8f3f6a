package medicines

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

type medicineUsecase struct {
	MedicineRepository contracts.MedicineRepository
	Log                *zap.Logger
}

var (
	medicineUsecaseInstance contracts.MedicineUsecase
	onceMedicineUsecase     sync.Once
)

func NewMedicineUsecase(medicineRepository contracts.MedicineRepository, logger *zap.Logger) contracts.MedicineUsecase {
	onceMedicineUsecase.Do(func() {
		instance := &medicineUsecase{
			MedicineRepository: medicineRepository,
			Log:                logger,
		}
		medicineUsecaseInstance = instance
	})
	return medicineUsecaseInstance
}

func (uc *medicineUsecase) Create(ctx context.Context, request *requests.CreateMedicineRequest) (*models.Medicine, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	expirationDate, err := utils.ParseDateYYYYMMDD(request.ExpirationDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	now := time.Now()
	medicine := &models.Medicine{
		Code:             request.Code,
		Name:             request.Name,
		Type:             request.Type,
		Ingredient:       request.Ingredient,
		Dosage:           request.Dosage,
		Contraindication: request.Contraindication,
		SideEffect:       request.SideEffect,
		Quantity:         request.Quantity,
		UnitPrice:        request.UnitPrice,
		Unit:             request.Unit,
		ExpirationDate:   expirationDate,
		SupplierName:     request.SupplierName,
		IsActive:         true,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	medicineID, err := uc.MedicineRepository.Insert(ctx, medicine)
	if err != nil {
		return nil, err
	}
	medicine.ID = medicineID

	uc.Log.Info("medicineUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineIDKey, medicineID),
	)
	return medicine, nil
}

func (uc *medicineUsecase) FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.Medicine, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, queryParams),
	)

	medicines, err := uc.MedicineRepository.FindAll(ctx, queryParams)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("medicineUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(medicines)),
	)
	return medicines, nil
}

func (uc *medicineUsecase) FindByID(ctx context.Context, medicineID string) (*models.Medicine, error) {
	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, exceptions.ErrMedicineNotFound(nil)
	}
	return medicine, nil
}

func (uc *medicineUsecase) Update(ctx context.Context, medicineID string, request *requests.UpdateMedicineRequest) (*models.Medicine, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineIDKey, medicineID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, exceptions.ErrMedicineNotFound(nil)
	}
	if !medicine.IsActive {
		return nil, exceptions.ErrMedicineInactive()
	}

	if request.Name != nil {
		medicine.Name = *request.Name
	}
	if request.Type != nil {
		medicine.Type = *request.Type
	}
	if request.Ingredient != nil {
		medicine.Ingredient = *request.Ingredient
	}
	if request.Dosage != nil {
		medicine.Dosage = *request.Dosage
	}
	if request.Contraindication != nil {
		medicine.Contraindication = *request.Contraindication
	}
	if request.SideEffect != nil {
		medicine.SideEffect = *request.SideEffect
	}
	if request.Quantity != nil {
		medicine.Quantity = *request.Quantity
	}
	if request.UnitPrice != nil {
		medicine.UnitPrice = *request.UnitPrice
	}
	if request.Unit != nil {
		medicine.Unit = *request.Unit
	}
	if request.ExpirationDate != nil {
		expirationDate, err := utils.ParseDateYYYYMMDD(*request.ExpirationDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		medicine.ExpirationDate = expirationDate
	}
	if request.SupplierName != nil {
		medicine.SupplierName = *request.SupplierName
	}

	if err := uc.MedicineRepository.Update(ctx, medicine); err != nil {
		return nil, err
	}

	uc.Log.Info("medicineUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineIDKey, medicineID),
	)
	return medicine, nil
}

// Disable soft-deletes a medicine. Disabled medicines stay in the collection
// so historical prescriptions and check details keep resolving.
func (uc *medicineUsecase) Disable(ctx context.Context, medicineID string, request *requests.DisableMedicineRequest) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.Disable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineIDKey, medicineID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return err
	}
	if medicine == nil {
		return exceptions.ErrMedicineNotFound(nil)
	}
	if !medicine.IsActive {
		return exceptions.ErrMedicineInactive()
	}

	if err := uc.MedicineRepository.Disable(ctx, medicineID, request.Reason); err != nil {
		return err
	}

	uc.Log.Info("medicineUsecase.Disable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineIDKey, medicineID),
	)
	return nil
}

func (uc *medicineUsecase) Dispense(ctx context.Context, request *requests.DispenseMedicineRequest) (*models.Medicine, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.Dispense called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineIDKey, request.MedicineID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	medicine, err := uc.MedicineRepository.DecrementQuantity(ctx, request.MedicineID, request.Quantity)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		// Determine whether the medicine is missing, disabled, or short on
		// stock so the client gets an actionable message.
		existing, err := uc.MedicineRepository.FindByID(ctx, request.MedicineID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, exceptions.ErrMedicineNotFound(nil)
		}
		if !existing.IsActive {
			return nil, exceptions.ErrMedicineInactive()
		}
		return nil, exceptions.ErrInsufficientStock()
	}

	uc.Log.Info("medicineUsecase.Dispense succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineIDKey, medicine.ID),
		zap.Int("remaining_quantity", medicine.Quantity),
	)
	return medicine, nil
}
