package models

type RecordStatus string

const (
	RecordNew                  RecordStatus = "new"
	RecordPendingClinical      RecordStatus = "pending_clinical"
	RecordPendingReExamination RecordStatus = "pending_re-examination"
	RecordDone                 RecordStatus = "done"
)

// Field names as used by the permission resolver and the update endpoint.
const (
	RecordFieldAdmissionReason    = "admissionReason"
	RecordFieldAdmissionDiagnosis = "admissionDiagnosis"
	RecordFieldDischargeDiagnosis = "dischargeDiagnosis"
	RecordFieldLabTestResult      = "labTestResult"
	RecordFieldTreatmentSummary   = "treatmentSummary"
	RecordFieldServices           = "services"
)

// RecordPermissions is the capability tuple gating what may be done to a
// medical record in its current status. It is policy only; it performs no
// transition itself.
type RecordPermissions struct {
	IsDisabled     bool
	ShowLabTest    bool
	EditableFields []string
	IsPrescription bool
}

var allRecordFields = []string{
	RecordFieldAdmissionReason,
	RecordFieldAdmissionDiagnosis,
	RecordFieldDischargeDiagnosis,
	RecordFieldLabTestResult,
	RecordFieldTreatmentSummary,
	RecordFieldServices,
}

// ResolveRecordPermissions maps a record status to its capability tuple.
// Unknown statuses are treated as a fresh record.
func ResolveRecordPermissions(status RecordStatus) RecordPermissions {
	switch status {
	case RecordDone:
		return RecordPermissions{
			IsDisabled:     true,
			ShowLabTest:    false,
			EditableFields: []string{},
			IsPrescription: false,
		}
	case RecordPendingReExamination:
		return RecordPermissions{
			IsDisabled:  true,
			ShowLabTest: true,
			EditableFields: []string{
				RecordFieldAdmissionReason,
				RecordFieldAdmissionDiagnosis,
			},
			IsPrescription: true,
		}
	case RecordPendingClinical:
		return RecordPermissions{
			IsDisabled:     true,
			ShowLabTest:    false,
			EditableFields: []string{},
			IsPrescription: true,
		}
	default:
		return RecordPermissions{
			IsDisabled:     false,
			ShowLabTest:    false,
			EditableFields: allRecordFields,
			IsPrescription: true,
		}
	}
}

func (p RecordPermissions) CanEdit(field string) bool {
	for _, editable := range p.EditableFields {
		if editable == field {
			return true
		}
	}
	return false
}

type PrescribedMedicine struct {
	MedicineID string `json:"medicineId" bson:"medicineId"`
	Quantity   int    `json:"quantity" bson:"quantity"`
	Note       string `json:"note" bson:"note,omitempty"`
}

type MedicalRecord struct {
	ID            string `json:"id" bson:"_id,omitempty"`
	AppointmentID string `json:"appointmentId" bson:"appointmentId"`

	// Patient snapshot, copied from the profile at creation time.
	PatientName    string `json:"patientName" bson:"patientName"`
	PatientDOB     string `json:"patientDob" bson:"patientDob"`
	PatientGender  string `json:"patientGender" bson:"patientGender"`
	PatientAddress string `json:"patientAddress" bson:"patientAddress"`
	IdentityNumber string `json:"identityNumber" bson:"identityNumber"`

	AdmissionReason    string               `json:"admissionReason" bson:"admissionReason,omitempty"`
	AdmissionDiagnosis string               `json:"admissionDiagnosis" bson:"admissionDiagnosis,omitempty"`
	DischargeDiagnosis string               `json:"dischargeDiagnosis" bson:"dischargeDiagnosis,omitempty"`
	LabTestResult      string               `json:"labTestResult" bson:"labTestResult,omitempty"`
	TreatmentSummary   string               `json:"treatmentSummary" bson:"treatmentSummary,omitempty"`
	Services           []string             `json:"services" bson:"services,omitempty"`
	Prescriptions      []PrescribedMedicine `json:"prescriptions" bson:"prescriptions,omitempty"`

	Status    RecordStatus `json:"status" bson:"status"`
	IsPaid    bool         `json:"isPaid" bson:"isPaid"`
	TimeModel `bson:",inline"`
}
