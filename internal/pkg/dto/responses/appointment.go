package responses

import "hospicare-service/internal/app/models"

type Appointment struct {
	ID           string `json:"id"`
	PatientName  string `json:"patientName"`
	DoctorID     string `json:"doctorId,omitempty"`
	DepartmentID string `json:"departmentId,omitempty"`
	ScheduledAt  string `json:"scheduledAt"`
	Symptom      string `json:"symptom,omitempty"`
	BHYTCode     string `json:"bhytCode,omitempty"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	Room         string `json:"room,omitempty"`
}

type PushToQueueResponse struct {
	Appointment models.Appointment `json:"appointment"`
	QueueEntry  models.QueueEntry  `json:"queueEntry"`
}
