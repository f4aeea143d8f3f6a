package models

import "time"

type AppointmentStatus string

const (
	AppointmentPendingConfirmation AppointmentStatus = "pending_confirmation"
	AppointmentConfirmed           AppointmentStatus = "confirmed"
	AppointmentRejected            AppointmentStatus = "rejected"
	AppointmentPendingCancel       AppointmentStatus = "pending_cancel"
	AppointmentCanceled            AppointmentStatus = "canceled"
	AppointmentWaitingForDoctor    AppointmentStatus = "waiting_for_doctor"
	AppointmentInProgress          AppointmentStatus = "in_progress"
	AppointmentCompleted           AppointmentStatus = "completed"
)

type AppointmentType string

const (
	AppointmentTypeOnline  AppointmentType = "Online"
	AppointmentTypeOffline AppointmentType = "Offline"
)

// appointmentTransitions is the single source of truth for the appointment
// lifecycle. Every status change must pass through CanTransitionTo; callers
// are never trusted to know which transitions are legal.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPendingConfirmation: {AppointmentConfirmed, AppointmentRejected},
	AppointmentConfirmed:           {AppointmentWaitingForDoctor, AppointmentPendingCancel},
	AppointmentPendingCancel:       {AppointmentCanceled, AppointmentConfirmed},
	AppointmentWaitingForDoctor:    {AppointmentInProgress},
	AppointmentInProgress:          {AppointmentCompleted},
	AppointmentRejected:            {},
	AppointmentCanceled:            {},
	AppointmentCompleted:           {},
}

func (s AppointmentStatus) IsValid() bool {
	_, ok := appointmentTransitions[s]
	return ok
}

func (s AppointmentStatus) IsTerminal() bool {
	targets, ok := appointmentTransitions[s]
	return ok && len(targets) == 0
}

func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID               string            `json:"id" bson:"_id,omitempty"`
	PatientProfileID string            `json:"patientProfileId" bson:"patientProfileId"`
	DoctorID         string            `json:"doctorId" bson:"doctorId,omitempty"`
	DepartmentID     string            `json:"departmentId" bson:"departmentId,omitempty"`
	ScheduledAt      time.Time         `json:"scheduledAt" bson:"scheduledAt"`
	Symptom          string            `json:"symptom" bson:"symptom,omitempty"`
	BHYTCode         string            `json:"bhytCode" bson:"bhytCode,omitempty"`
	Type             AppointmentType   `json:"type" bson:"type"`
	Status           AppointmentStatus `json:"status" bson:"status"`
	Room             string            `json:"room" bson:"room,omitempty"`
	TimeModel        `bson:",inline"`
}
