package responses

import "hospicare-service/internal/app/models"

// Attendance pairs the stored record with its derived display status; the
// status itself is never persisted.
type Attendance struct {
	Record models.Attendance       `json:"record"`
	Status models.AttendanceStatus `json:"status"`
}
