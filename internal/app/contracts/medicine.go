package contracts

import (
	"context"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/dto/requests"
)

type MedicineUsecase interface {
	Create(ctx context.Context, request *requests.CreateMedicineRequest) (*models.Medicine, error)
	FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.Medicine, error)
	FindByID(ctx context.Context, medicineID string) (*models.Medicine, error)
	Update(ctx context.Context, medicineID string, request *requests.UpdateMedicineRequest) (*models.Medicine, error)
	Disable(ctx context.Context, medicineID string, request *requests.DisableMedicineRequest) error
	Dispense(ctx context.Context, request *requests.DispenseMedicineRequest) (*models.Medicine, error)
}

type MedicineRepository interface {
	Insert(ctx context.Context, medicine *models.Medicine) (string, error)
	FindByID(ctx context.Context, medicineID string) (*models.Medicine, error)
	FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.Medicine, error)
	Update(ctx context.Context, medicine *models.Medicine) error
	Disable(ctx context.Context, medicineID, reason string) error
	// DecrementQuantity must fail without modifying the document when the
	// remaining stock is lower than the requested amount.
	DecrementQuantity(ctx context.Context, medicineID string, amount int) (*models.Medicine, error)
}
