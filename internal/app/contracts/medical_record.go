package contracts

import (
	"context"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/dto/responses"
)

type MedicalRecordUsecase interface {
	Create(ctx context.Context, request *requests.CreateMedicalRecordRequest) (*models.MedicalRecord, error)
	FindByID(ctx context.Context, recordID string) (*responses.MedicalRecord, error)
	FindByAppointmentID(ctx context.Context, appointmentID string) (*responses.MedicalRecord, error)
	Update(ctx context.Context, recordID string, request *requests.UpdateMedicalRecordRequest) (*models.MedicalRecord, error)
	UpdatePrescriptions(ctx context.Context, recordID string, request *requests.UpdatePrescriptionsRequest) (*models.MedicalRecord, error)
	RequestLabTest(ctx context.Context, recordID string) (*models.MedicalRecord, error)
	SubmitLabTestResult(ctx context.Context, recordID string, request *requests.LabTestResultRequest) (*models.MedicalRecord, error)
	Complete(ctx context.Context, recordID string) (*models.MedicalRecord, error)
}

type MedicalRecordRepository interface {
	Insert(ctx context.Context, record *models.MedicalRecord) (string, error)
	FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error)
	FindByAppointmentID(ctx context.Context, appointmentID string) (*models.MedicalRecord, error)
	Update(ctx context.Context, record *models.MedicalRecord) error
}
