package requests

type CreateAppointmentRequest struct {
	PatientProfileID string `json:"patientProfileId" validate:"required"`
	DoctorID         string `json:"doctorId"`
	DepartmentID     string `json:"departmentId"`
	ScheduledAt      string `json:"scheduledAt" validate:"required"`
	Symptom          string `json:"symptom"`
	BHYTCode         string `json:"bhytCode" validate:"omitempty,bhyt_code"`
	Type             string `json:"type" validate:"required,oneof=Online Offline"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type PushToQueueRequest struct {
	Room string `json:"room" validate:"required"`
}
