package models

import "time"

type AttendanceStatus string

const (
	AttendancePresent     AttendanceStatus = "Present"
	AttendanceLateArrival AttendanceStatus = "Late-Arrival"
	AttendanceLeftEarly   AttendanceStatus = "Left-Early"
	AttendanceLeftLate    AttendanceStatus = "Left-Late"
	AttendanceCheckedIn   AttendanceStatus = "Checked-In"
	AttendanceAbsent      AttendanceStatus = "Absent"
	AttendanceOnLeave     AttendanceStatus = "On-Leave"
	AttendanceInvalid     AttendanceStatus = "Invalid"
)

type Geolocation struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

type Attendance struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	ScheduleID string `json:"scheduleId" bson:"scheduleId"`
	EmployeeID string `json:"employeeId" bson:"employeeId"`

	CheckInAt  *time.Time `json:"checkInAt,omitempty" bson:"checkInAt,omitempty"`
	CheckOutAt *time.Time `json:"checkOutAt,omitempty" bson:"checkOutAt,omitempty"`

	// Best-effort capture; IP falls back to "unknown", location to null.
	CheckInIP       string       `json:"checkInIp" bson:"checkInIp"`
	CheckInLocation *Geolocation `json:"checkInLocation,omitempty" bson:"checkInLocation,omitempty"`

	OnLeave   bool `json:"onLeave" bson:"onLeave"`
	TimeModel `bson:",inline"`
}
