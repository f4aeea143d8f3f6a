package contracts

import (
	"context"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/dto/requests"
)

type PatientUsecase interface {
	Create(ctx context.Context, request *requests.CreatePatientRequest) (*models.PatientProfile, error)
	FindByIdentityNumber(ctx context.Context, identityNumber string) (*models.PatientProfile, error)
	FindByID(ctx context.Context, patientID string) (*models.PatientProfile, error)
	FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.PatientProfile, error)
}

type PatientRepository interface {
	Insert(ctx context.Context, patient *models.PatientProfile) (string, error)
	FindByID(ctx context.Context, patientID string) (*models.PatientProfile, error)
	FindByIdentityNumber(ctx context.Context, identityNumber string) (*models.PatientProfile, error)
	FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.PatientProfile, error)
}
