package models

type QueueEntryStatus string

const (
	QueueEntryQueued QueueEntryStatus = "queued"
	QueueEntryServed QueueEntryStatus = "served"
)

// QueueEntry is a per-room, per-day waiting-list slot. Positions are 1-based
// and unique within a (room, date) partition; entries are append-only.
type QueueEntry struct {
	ID               string           `json:"id" bson:"_id,omitempty"`
	Position         int              `json:"position" bson:"position"`
	AppointmentID    string           `json:"appointmentId" bson:"appointmentId"`
	PatientProfileID string           `json:"patientProfileId" bson:"patientProfileId"`
	DoctorID         string           `json:"doctorId" bson:"doctorId"`
	Room             string           `json:"room" bson:"room"`
	Date             string           `json:"date" bson:"date"`
	Status           QueueEntryStatus `json:"status" bson:"status"`
	TimeModel        `bson:",inline"`
}
