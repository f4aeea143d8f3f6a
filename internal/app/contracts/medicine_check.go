package contracts

import (
	"context"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/dto/requests"
)

type MedicineCheckUsecase interface {
	Create(ctx context.Context, sessionData string, request *requests.CreateMedicineCheckRequest) (*models.MedicineCheck, error)
	FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.MedicineCheck, error)
	FindByID(ctx context.Context, checkID string) (*models.MedicineCheck, error)
	AddDetail(ctx context.Context, checkID string, request *requests.MedicineCheckDetailRequest) (*models.MedicineCheck, error)
	UpdateDetail(ctx context.Context, checkID, batchNumber string, request *requests.MedicineCheckDetailRequest) (*models.MedicineCheck, error)
	Complete(ctx context.Context, checkID string) (*models.MedicineCheck, error)
	Promote(ctx context.Context, checkID string, request *requests.PromoteCheckDetailsRequest) ([]models.Medicine, error)
}

type MedicineCheckRepository interface {
	Insert(ctx context.Context, check *models.MedicineCheck) (string, error)
	FindByID(ctx context.Context, checkID string) (*models.MedicineCheck, error)
	FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.MedicineCheck, error)
	Update(ctx context.Context, check *models.MedicineCheck) error
}
