package requests

type CreateMedicalRecordRequest struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
}

// UpdateMedicalRecordRequest uses pointer fields so that only fields actually
// present in the payload are checked against the record's editable-field set.
type UpdateMedicalRecordRequest struct {
	AdmissionReason    *string   `json:"admissionReason,omitempty"`
	AdmissionDiagnosis *string   `json:"admissionDiagnosis,omitempty"`
	DischargeDiagnosis *string   `json:"dischargeDiagnosis,omitempty"`
	LabTestResult      *string   `json:"labTestResult,omitempty"`
	TreatmentSummary   *string   `json:"treatmentSummary,omitempty"`
	Services           *[]string `json:"services,omitempty"`
}

type PrescriptionItem struct {
	MedicineID string `json:"medicineId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
	Note       string `json:"note"`
}

type UpdatePrescriptionsRequest struct {
	Prescriptions []PrescriptionItem `json:"prescriptions" validate:"required,dive"`
}

type LabTestResultRequest struct {
	LabTestResult string `json:"labTestResult" validate:"required"`
}
