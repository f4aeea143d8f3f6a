package models

type ShiftName string

const (
	ShiftMorning   ShiftName = "morning"
	ShiftAfternoon ShiftName = "afternoon"
)

// TimeSlot bounds are stored as "HH:MM" wall-clock strings in the hospital's
// timezone, matching the shift roster the schedules are generated from.
type TimeSlot struct {
	Shift     ShiftName `json:"shift" bson:"shift"`
	StartTime string    `json:"startTime" bson:"startTime"`
	EndTime   string    `json:"endTime" bson:"endTime"`
}

type WorkSchedule struct {
	ID         string     `json:"id" bson:"_id,omitempty"`
	EmployeeID string     `json:"employeeId" bson:"employeeId"`
	Date       string     `json:"date" bson:"date"`
	TimeSlots  []TimeSlot `json:"timeSlots" bson:"timeSlots"`
	Room       string     `json:"room" bson:"room,omitempty"`
	TimeModel  `bson:",inline"`
}
