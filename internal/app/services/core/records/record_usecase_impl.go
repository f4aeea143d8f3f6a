package records

import (
	"context"
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

type recordUsecase struct {
	RecordRepository      contracts.MedicalRecordRepository
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	MedicineRepository    contracts.MedicineRepository
	Log                   *zap.Logger
}

var (
	recordUsecaseInstance contracts.MedicalRecordUsecase
	onceRecordUsecase     sync.Once
)

func NewRecordUsecase(
	recordRepository contracts.MedicalRecordRepository,
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	medicineRepository contracts.MedicineRepository,
	logger *zap.Logger,
) contracts.MedicalRecordUsecase {
	onceRecordUsecase.Do(func() {
		instance := &recordUsecase{
			RecordRepository:      recordRepository,
			AppointmentRepository: appointmentRepository,
			PatientRepository:     patientRepository,
			MedicineRepository:    medicineRepository,
			Log:                   logger,
		}
		recordUsecaseInstance = instance
	})
	return recordUsecaseInstance
}

func (uc *recordUsecase) Create(ctx context.Context, request *requests.CreateMedicalRecordRequest) (*models.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("recordUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.Status != models.AppointmentInProgress {
		return nil, exceptions.ErrIllegalStatusTransition(string(appointment.Status), string(models.AppointmentInProgress))
	}

	patient, err := uc.PatientRepository.FindByID(ctx, appointment.PatientProfileID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	now := time.Now()
	record := &models.MedicalRecord{
		AppointmentID:  request.AppointmentID,
		PatientName:    patient.FullName,
		PatientDOB:     patient.DateOfBirth,
		PatientGender:  patient.Gender,
		PatientAddress: patient.Address,
		IdentityNumber: patient.IdentityNumber,
		Status:         models.RecordNew,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	recordID, err := uc.RecordRepository.Insert(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = recordID

	uc.Log.Info("recordUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	return record, nil
}

func (uc *recordUsecase) FindByID(ctx context.Context, recordID string) (*responses.MedicalRecord, error) {
	record, err := uc.RecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return buildRecordResponse(record), nil
}

func (uc *recordUsecase) FindByAppointmentID(ctx context.Context, appointmentID string) (*responses.MedicalRecord, error) {
	record, err := uc.RecordRepository.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return buildRecordResponse(record), nil
}

// Update applies only the fields present in the payload, and only when the
// record's current status allows each of them. A record in done rejects
// everything.
func (uc *recordUsecase) Update(ctx context.Context, recordID string, request *requests.UpdateMedicalRecordRequest) (*models.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("recordUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	record, err := uc.RecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	if record.Status == models.RecordDone {
		return nil, exceptions.ErrRecordImmutable(recordID, string(record.Status))
	}

	permissions := models.ResolveRecordPermissions(record.Status)

	type fieldUpdate struct {
		name  string
		apply func()
		set   bool
	}
	updates := []fieldUpdate{
		{models.RecordFieldAdmissionReason, func() { record.AdmissionReason = *request.AdmissionReason }, request.AdmissionReason != nil},
		{models.RecordFieldAdmissionDiagnosis, func() { record.AdmissionDiagnosis = *request.AdmissionDiagnosis }, request.AdmissionDiagnosis != nil},
		{models.RecordFieldDischargeDiagnosis, func() { record.DischargeDiagnosis = *request.DischargeDiagnosis }, request.DischargeDiagnosis != nil},
		{models.RecordFieldLabTestResult, func() { record.LabTestResult = *request.LabTestResult }, request.LabTestResult != nil},
		{models.RecordFieldTreatmentSummary, func() { record.TreatmentSummary = *request.TreatmentSummary }, request.TreatmentSummary != nil},
		{models.RecordFieldServices, func() { record.Services = *request.Services }, request.Services != nil},
	}

	for _, update := range updates {
		if !update.set {
			continue
		}
		if !permissions.CanEdit(update.name) {
			uc.Log.Info("recordUsecase.Update rejected field",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRecordStatusKey, string(record.Status)),
				zap.String("field", update.name),
			)
			return nil, exceptions.ErrRecordFieldNotEditable(update.name)
		}
		update.apply()
	}

	if err := uc.RecordRepository.Update(ctx, record); err != nil {
		return nil, err
	}

	uc.Log.Info("recordUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	return record, nil
}

func (uc *recordUsecase) UpdatePrescriptions(ctx context.Context, recordID string, request *requests.UpdatePrescriptionsRequest) (*models.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("recordUsecase.UpdatePrescriptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	record, err := uc.RecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	permissions := models.ResolveRecordPermissions(record.Status)
	if !permissions.IsPrescription {
		return nil, exceptions.ErrRecordImmutable(recordID, string(record.Status))
	}

	prescriptions := make([]models.PrescribedMedicine, 0, len(request.Prescriptions))
	for _, item := range request.Prescriptions {
		medicine, err := uc.MedicineRepository.FindByID(ctx, item.MedicineID)
		if err != nil {
			return nil, err
		}
		if medicine == nil {
			return nil, exceptions.ErrMedicineNotFound(nil)
		}
		if !medicine.IsActive {
			return nil, exceptions.ErrMedicineInactive()
		}
		prescriptions = append(prescriptions, models.PrescribedMedicine{
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
			Note:       item.Note,
		})
	}
	record.Prescriptions = prescriptions

	if err := uc.RecordRepository.Update(ctx, record); err != nil {
		return nil, err
	}

	uc.Log.Info("recordUsecase.UpdatePrescriptions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
		zap.Int(constvars.LoggingResponseCountKey, len(prescriptions)),
	)
	return record, nil
}

// RequestLabTest parks the record while the patient is sent to the clinical
// department; editable fields are frozen until the result comes back.
func (uc *recordUsecase) RequestLabTest(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("recordUsecase.RequestLabTest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	record, err := uc.RecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if record.Status != models.RecordNew {
		return nil, exceptions.ErrRecordImmutable(recordID, string(record.Status))
	}

	record.Status = models.RecordPendingClinical

	if err := uc.RecordRepository.Update(ctx, record); err != nil {
		return nil, err
	}

	uc.Log.Info("recordUsecase.RequestLabTest succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	return record, nil
}

// SubmitLabTestResult records the clinical result and advances the record to
// pending re-examination.
func (uc *recordUsecase) SubmitLabTestResult(ctx context.Context, recordID string, request *requests.LabTestResultRequest) (*models.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("recordUsecase.SubmitLabTestResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	record, err := uc.RecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if record.Status != models.RecordPendingClinical {
		return nil, exceptions.ErrRecordImmutable(recordID, string(record.Status))
	}

	record.LabTestResult = request.LabTestResult
	record.Status = models.RecordPendingReExamination

	if err := uc.RecordRepository.Update(ctx, record); err != nil {
		return nil, err
	}

	uc.Log.Info("recordUsecase.SubmitLabTestResult succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	return record, nil
}

func (uc *recordUsecase) Complete(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("recordUsecase.Complete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	record, err := uc.RecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if record.Status == models.RecordDone {
		return nil, exceptions.ErrRecordImmutable(recordID, string(record.Status))
	}

	record.Status = models.RecordDone

	if err := uc.RecordRepository.Update(ctx, record); err != nil {
		return nil, err
	}

	uc.Log.Info("recordUsecase.Complete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	return record, nil
}

func buildRecordResponse(record *models.MedicalRecord) *responses.MedicalRecord {
	permissions := models.ResolveRecordPermissions(record.Status)
	return &responses.MedicalRecord{
		Record: *record,
		Permissions: responses.RecordPermissions{
			IsDisabled:     permissions.IsDisabled,
			ShowLabTest:    permissions.ShowLabTest,
			EditableFields: permissions.EditableFields,
			IsPrescription: permissions.IsPrescription,
		},
	}
}
