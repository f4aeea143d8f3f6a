package medicinechecks

import (
	"context"
	"fmt"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockCheckRepository struct {
	mock.Mock
}

func (m *mockCheckRepository) Insert(ctx context.Context, check *models.MedicineCheck) (string, error) {
	args := m.Called(ctx, check)
	return args.String(0), args.Error(1)
}

func (m *mockCheckRepository) FindByID(ctx context.Context, checkID string) (*models.MedicineCheck, error) {
	args := m.Called(ctx, checkID)
	if check := args.Get(0); check != nil {
		return check.(*models.MedicineCheck), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCheckRepository) FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.MedicineCheck, error) {
	args := m.Called(ctx, queryParams)
	if checks := args.Get(0); checks != nil {
		return checks.([]models.MedicineCheck), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCheckRepository) Update(ctx context.Context, check *models.MedicineCheck) error {
	args := m.Called(ctx, check)
	return args.Error(0)
}

type mockMedicineRepository struct {
	mock.Mock
}

func (m *mockMedicineRepository) Insert(ctx context.Context, medicine *models.Medicine) (string, error) {
	args := m.Called(ctx, medicine)
	return args.String(0), args.Error(1)
}

func (m *mockMedicineRepository) FindByID(ctx context.Context, medicineID string) (*models.Medicine, error) {
	args := m.Called(ctx, medicineID)
	if medicine := args.Get(0); medicine != nil {
		return medicine.(*models.Medicine), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMedicineRepository) FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.Medicine, error) {
	args := m.Called(ctx, queryParams)
	if medicines := args.Get(0); medicines != nil {
		return medicines.([]models.Medicine), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMedicineRepository) Update(ctx context.Context, medicine *models.Medicine) error {
	args := m.Called(ctx, medicine)
	return args.Error(0)
}

func (m *mockMedicineRepository) Disable(ctx context.Context, medicineID, reason string) error {
	args := m.Called(ctx, medicineID, reason)
	return args.Error(0)
}

func (m *mockMedicineRepository) DecrementQuantity(ctx context.Context, medicineID string, amount int) (*models.Medicine, error) {
	args := m.Called(ctx, medicineID, amount)
	if medicine := args.Get(0); medicine != nil {
		return medicine.(*models.Medicine), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockLockerService struct {
	mock.Mock
}

func (m *mockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *mockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func newCheckFixture(checkID string, details ...models.MedicineCheckDetail) *models.MedicineCheck {
	return &models.MedicineCheck{
		ID:           checkID,
		CheckCode:    "PK-20250101-0001",
		SupplierName: "Dược phẩm Hà Nội",
		CheckDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:       models.CheckNotChecked,
		Details:      details,
	}
}

func TestMedicineCheckUsecase_Complete(t *testing.T) {
	checkID := "check-1"
	lockKey := fmt.Sprintf(constvars.MedicineCheckLockKeyFormat, checkID)

	t.Run("matching quantities close the check as checked", func(t *testing.T) {
		checkRepo := new(mockCheckRepository)
		locker := new(mockLockerService)
		usecase := &medicineCheckUsecase{
			CheckRepository: checkRepo,
			LockService:     locker,
			Log:             zap.NewNop(),
		}

		check := newCheckFixture(checkID,
			models.MedicineCheckDetail{BatchNumber: "B-001", DeclaredQuantity: 100, ActualQuantity: 100},
			models.MedicineCheckDetail{BatchNumber: "B-002", DeclaredQuantity: 40, ActualQuantity: 40},
		)
		locker.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(true, "lock-value", nil)
		locker.On("Unlock", mock.Anything, lockKey, "lock-value").Return(nil)
		checkRepo.On("FindByID", mock.Anything, checkID).Return(check, nil)
		checkRepo.On("Update", mock.Anything, check).Return(nil)

		result, err := usecase.Complete(context.Background(), checkID)

		assert.NoError(t, err)
		assert.Equal(t, models.CheckChecked, result.Status)
		for _, detail := range result.Details {
			assert.Zero(t, detail.Discrepancy)
			assert.False(t, detail.HasDiscrepancy)
		}
		checkRepo.AssertExpectations(t)
		locker.AssertExpectations(t)
	})

	t.Run("counted shortfall flags the check as discrepant", func(t *testing.T) {
		checkRepo := new(mockCheckRepository)
		locker := new(mockLockerService)
		usecase := &medicineCheckUsecase{
			CheckRepository: checkRepo,
			LockService:     locker,
			Log:             zap.NewNop(),
		}

		check := newCheckFixture(checkID,
			models.MedicineCheckDetail{BatchNumber: "B-001", DeclaredQuantity: 100, ActualQuantity: 95},
			models.MedicineCheckDetail{BatchNumber: "B-002", DeclaredQuantity: 40, ActualQuantity: 40},
		)
		locker.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(true, "lock-value", nil)
		locker.On("Unlock", mock.Anything, lockKey, "lock-value").Return(nil)
		checkRepo.On("FindByID", mock.Anything, checkID).Return(check, nil)
		checkRepo.On("Update", mock.Anything, check).Return(nil)

		result, err := usecase.Complete(context.Background(), checkID)

		assert.NoError(t, err)
		assert.Equal(t, models.CheckDiscrepancy, result.Status)
		assert.Equal(t, -5, result.Details[0].Discrepancy)
		assert.True(t, result.Details[0].HasDiscrepancy)
		assert.False(t, result.Details[1].HasDiscrepancy)
	})

	t.Run("rejects a check with no details", func(t *testing.T) {
		checkRepo := new(mockCheckRepository)
		locker := new(mockLockerService)
		usecase := &medicineCheckUsecase{
			CheckRepository: checkRepo,
			LockService:     locker,
			Log:             zap.NewNop(),
		}

		locker.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(true, "lock-value", nil)
		locker.On("Unlock", mock.Anything, lockKey, "lock-value").Return(nil)
		checkRepo.On("FindByID", mock.Anything, checkID).Return(newCheckFixture(checkID), nil)

		result, err := usecase.Complete(context.Background(), checkID)

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientMedicineCheckNoItems, customErr.ClientMessage)
		checkRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects a check that is already closed", func(t *testing.T) {
		checkRepo := new(mockCheckRepository)
		locker := new(mockLockerService)
		usecase := &medicineCheckUsecase{
			CheckRepository: checkRepo,
			LockService:     locker,
			Log:             zap.NewNop(),
		}

		check := newCheckFixture(checkID, models.MedicineCheckDetail{BatchNumber: "B-001"})
		check.Status = models.CheckChecked
		locker.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(true, "lock-value", nil)
		locker.On("Unlock", mock.Anything, lockKey, "lock-value").Return(nil)
		checkRepo.On("FindByID", mock.Anything, checkID).Return(check, nil)

		result, err := usecase.Complete(context.Background(), checkID)

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientMedicineCheckCompleted, customErr.ClientMessage)
	})

	t.Run("returns conflict when the lock is held elsewhere", func(t *testing.T) {
		checkRepo := new(mockCheckRepository)
		locker := new(mockLockerService)
		usecase := &medicineCheckUsecase{
			CheckRepository: checkRepo,
			LockService:     locker,
			Log:             zap.NewNop(),
		}

		locker.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(false, "", nil)

		result, err := usecase.Complete(context.Background(), checkID)

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		checkRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMedicineCheckUsecase_Promote(t *testing.T) {
	checkID := "check-1"

	t.Run("registers inventory rows from counted quantities", func(t *testing.T) {
		checkRepo := new(mockCheckRepository)
		medicineRepo := new(mockMedicineRepository)
		usecase := &medicineCheckUsecase{
			CheckRepository:    checkRepo,
			MedicineRepository: medicineRepo,
			Log:                zap.NewNop(),
		}

		check := newCheckFixture(checkID, models.MedicineCheckDetail{
			MedicineCode:     "PARA500",
			MedicineName:     "Paracetamol 500mg",
			BatchNumber:      "B-001",
			DeclaredQuantity: 100,
			ActualQuantity:   95,
			ImportPrice:      1200,
			Unit:             "viên",
		})
		check.Status = models.CheckDiscrepancy
		checkRepo.On("FindByID", mock.Anything, checkID).Return(check, nil)
		medicineRepo.On("Insert", mock.Anything, mock.Anything).Return("medicine-1", nil)

		medicines, err := usecase.Promote(context.Background(), checkID, &requests.PromoteCheckDetailsRequest{
			BatchNumbers: []string{"B-001"},
		})

		assert.NoError(t, err)
		assert.Len(t, medicines, 1)
		assert.Equal(t, 95, medicines[0].Quantity)
		assert.Equal(t, float64(1200), medicines[0].UnitPrice)
		assert.Equal(t, check.SupplierName, medicines[0].SupplierName)
		assert.True(t, medicines[0].IsActive)
		medicineRepo.AssertExpectations(t)
	})

	t.Run("rejects promoting an open check", func(t *testing.T) {
		checkRepo := new(mockCheckRepository)
		medicineRepo := new(mockMedicineRepository)
		usecase := &medicineCheckUsecase{
			CheckRepository:    checkRepo,
			MedicineRepository: medicineRepo,
			Log:                zap.NewNop(),
		}

		check := newCheckFixture(checkID, models.MedicineCheckDetail{BatchNumber: "B-001"})
		checkRepo.On("FindByID", mock.Anything, checkID).Return(check, nil)

		medicines, err := usecase.Promote(context.Background(), checkID, &requests.PromoteCheckDetailsRequest{
			BatchNumbers: []string{"B-001"},
		})

		assert.Nil(t, medicines)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientMedicineCheckNotComplete, customErr.ClientMessage)
		medicineRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("rejects a batch missing from the check", func(t *testing.T) {
		checkRepo := new(mockCheckRepository)
		medicineRepo := new(mockMedicineRepository)
		usecase := &medicineCheckUsecase{
			CheckRepository:    checkRepo,
			MedicineRepository: medicineRepo,
			Log:                zap.NewNop(),
		}

		check := newCheckFixture(checkID, models.MedicineCheckDetail{BatchNumber: "B-001"})
		check.Status = models.CheckChecked
		checkRepo.On("FindByID", mock.Anything, checkID).Return(check, nil)

		medicines, err := usecase.Promote(context.Background(), checkID, &requests.PromoteCheckDetailsRequest{
			BatchNumbers: []string{"B-999"},
		})

		assert.Nil(t, medicines)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
