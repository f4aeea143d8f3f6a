package responses

import "hospicare-service/internal/app/models"

// RecordPermissions mirrors the capability tuple the form layer uses to gate
// field editability and the prescription button.
type RecordPermissions struct {
	IsDisabled     bool     `json:"isDisabled"`
	ShowLabTest    bool     `json:"showLabTest"`
	EditableFields []string `json:"editableFields"`
	IsPrescription bool     `json:"isPrescription"`
}

type MedicalRecord struct {
	Record      models.MedicalRecord `json:"record"`
	Permissions RecordPermissions    `json:"permissions"`
}
