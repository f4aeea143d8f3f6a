package attendances

import (
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/utils"
	"time"
)

// DeriveStatus classifies an attendance record against its work schedule at
// the given instant. The status is computed on read and never stored, so a
// record that reads Checked-In during the shift reads Absent once the shift
// has passed without a check-out being relevant.
//
// Precedence when several conditions hold: On-Leave, then Absent, then
// Invalid, then Checked-In, then Late-Arrival, Left-Early, Left-Late,
// and finally Present.
func DeriveStatus(attendance *models.Attendance, schedule *models.WorkSchedule, now time.Time, loc *time.Location) models.AttendanceStatus {
	if attendance != nil && attendance.OnLeave {
		return models.AttendanceOnLeave
	}

	start, end, ok := scheduleBounds(schedule, loc)
	if !ok {
		return models.AttendanceInvalid
	}

	grace := time.Duration(constvars.AttendanceGraceMinutes) * time.Minute
	leftLate := time.Duration(constvars.AttendanceLeftLateMinutes) * time.Minute

	if attendance == nil || attendance.CheckInAt == nil {
		if now.After(end) {
			return models.AttendanceAbsent
		}
		return models.AttendanceInvalid
	}

	checkIn := *attendance.CheckInAt
	if checkIn.After(end) {
		return models.AttendanceInvalid
	}

	if attendance.CheckOutAt == nil {
		if now.After(end.Add(grace)) {
			return models.AttendanceAbsent
		}
		return models.AttendanceCheckedIn
	}

	checkOut := *attendance.CheckOutAt
	switch {
	case checkIn.After(start.Add(grace)):
		return models.AttendanceLateArrival
	case checkOut.Before(end.Add(-grace)):
		return models.AttendanceLeftEarly
	case checkOut.After(end.Add(leftLate)):
		return models.AttendanceLeftLate
	default:
		return models.AttendancePresent
	}
}

// scheduleBounds collapses a schedule's slots into a single working window,
// the earliest slot start to the latest slot end.
func scheduleBounds(schedule *models.WorkSchedule, loc *time.Location) (time.Time, time.Time, bool) {
	if schedule == nil || len(schedule.TimeSlots) == 0 {
		return time.Time{}, time.Time{}, false
	}

	var start, end time.Time
	for i, slot := range schedule.TimeSlots {
		slotStart, slotEnd, err := utils.SlotBounds(schedule.Date, slot.StartTime, slot.EndTime, loc)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		if i == 0 || slotStart.Before(start) {
			start = slotStart
		}
		if i == 0 || slotEnd.After(end) {
			end = slotEnd
		}
	}
	return start, end, true
}
