package requests

type CheckInRequest struct {
	ScheduleID string   `json:"scheduleId" validate:"required"`
	EmployeeID string   `json:"employeeId" validate:"required"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type CheckOutRequest struct {
	ScheduleID string `json:"scheduleId" validate:"required"`
	EmployeeID string `json:"employeeId" validate:"required"`
}

type CreateWorkScheduleRequest struct {
	EmployeeID string                 `json:"employeeId" validate:"required"`
	Date       string                 `json:"date" validate:"required"`
	Room       string                 `json:"room"`
	TimeSlots  []WorkScheduleTimeSlot `json:"timeSlots" validate:"required,min=1,dive"`
}

type WorkScheduleTimeSlot struct {
	Shift     string `json:"shift" validate:"required,oneof=morning afternoon"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}
