package medicines

import (
	"context"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

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

func TestMedicineUsecase_Dispense(t *testing.T) {
	request := &requests.DispenseMedicineRequest{MedicineID: "medicine-1", Quantity: 10}

	t.Run("returns the decremented document on success", func(t *testing.T) {
		repo := new(mockMedicineRepository)
		usecase := &medicineUsecase{MedicineRepository: repo, Log: zap.NewNop()}

		repo.On("DecrementQuantity", mock.Anything, "medicine-1", 10).
			Return(&models.Medicine{ID: "medicine-1", Quantity: 90, IsActive: true}, nil)

		medicine, err := usecase.Dispense(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, 90, medicine.Quantity)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("reports not found when the medicine does not exist", func(t *testing.T) {
		repo := new(mockMedicineRepository)
		usecase := &medicineUsecase{MedicineRepository: repo, Log: zap.NewNop()}

		repo.On("DecrementQuantity", mock.Anything, "medicine-1", 10).Return(nil, nil)
		repo.On("FindByID", mock.Anything, "medicine-1").Return(nil, nil)

		medicine, err := usecase.Dispense(context.Background(), request)

		assert.Nil(t, medicine)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientMedicineNotFound, customErr.ClientMessage)
	})

	t.Run("reports disabled when the medicine is inactive", func(t *testing.T) {
		repo := new(mockMedicineRepository)
		usecase := &medicineUsecase{MedicineRepository: repo, Log: zap.NewNop()}

		repo.On("DecrementQuantity", mock.Anything, "medicine-1", 10).Return(nil, nil)
		repo.On("FindByID", mock.Anything, "medicine-1").
			Return(&models.Medicine{ID: "medicine-1", Quantity: 100, IsActive: false}, nil)

		medicine, err := usecase.Dispense(context.Background(), request)

		assert.Nil(t, medicine)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientMedicineInactive, customErr.ClientMessage)
	})

	t.Run("reports insufficient stock when the guard rejects the decrement", func(t *testing.T) {
		repo := new(mockMedicineRepository)
		usecase := &medicineUsecase{MedicineRepository: repo, Log: zap.NewNop()}

		repo.On("DecrementQuantity", mock.Anything, "medicine-1", 10).Return(nil, nil)
		repo.On("FindByID", mock.Anything, "medicine-1").
			Return(&models.Medicine{ID: "medicine-1", Quantity: 3, IsActive: true}, nil)

		medicine, err := usecase.Dispense(context.Background(), request)

		assert.Nil(t, medicine)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInsufficientStock, customErr.ClientMessage)
	})

	t.Run("rejects a non-positive quantity", func(t *testing.T) {
		repo := new(mockMedicineRepository)
		usecase := &medicineUsecase{MedicineRepository: repo, Log: zap.NewNop()}

		medicine, err := usecase.Dispense(context.Background(), &requests.DispenseMedicineRequest{
			MedicineID: "medicine-1",
			Quantity:   0,
		})

		assert.Nil(t, medicine)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "DecrementQuantity", mock.Anything, mock.Anything, mock.Anything)
	})
}
