package attendances

import (
	"hospicare-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestDeriveStatus(t *testing.T) {
	loc := time.UTC
	schedule := &models.WorkSchedule{
		EmployeeID: "employee-1",
		Date:       "2025-03-10",
		TimeSlots: []models.TimeSlot{
			{Shift: models.ShiftMorning, StartTime: "08:00", EndTime: "12:00"},
			{Shift: models.ShiftAfternoon, StartTime: "13:00", EndTime: "17:00"},
		},
	}
	// Multi-slot schedules collapse to one window, 08:00 to 17:00.
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, loc)
	end := time.Date(2025, 3, 10, 17, 0, 0, 0, loc)

	testCases := []struct {
		name       string
		attendance *models.Attendance
		now        time.Time
		expected   models.AttendanceStatus
	}{
		{
			name: "on leave wins over everything",
			attendance: &models.Attendance{
				OnLeave:   true,
				CheckInAt: timePtr(start.Add(2 * time.Hour)),
			},
			now:      end.Add(time.Hour),
			expected: models.AttendanceOnLeave,
		},
		{
			name:       "missing check-in before the shift ends is invalid",
			attendance: nil,
			now:        end.Add(-time.Hour),
			expected:   models.AttendanceInvalid,
		},
		{
			name:       "missing check-in after the shift ends is absent",
			attendance: nil,
			now:        end.Add(time.Minute),
			expected:   models.AttendanceAbsent,
		},
		{
			name: "check-in after the shift end is invalid",
			attendance: &models.Attendance{
				CheckInAt:  timePtr(end.Add(time.Minute)),
				CheckOutAt: timePtr(end.Add(2 * time.Hour)),
			},
			now:      end.Add(3 * time.Hour),
			expected: models.AttendanceInvalid,
		},
		{
			name: "checked in and still inside the shift",
			attendance: &models.Attendance{
				CheckInAt: timePtr(start),
			},
			now:      start.Add(time.Hour),
			expected: models.AttendanceCheckedIn,
		},
		{
			name: "no check-out within the grace window still reads checked in",
			attendance: &models.Attendance{
				CheckInAt: timePtr(start),
			},
			now:      end.Add(15 * time.Minute),
			expected: models.AttendanceCheckedIn,
		},
		{
			name: "no check-out past the grace window is absent",
			attendance: &models.Attendance{
				CheckInAt: timePtr(start),
			},
			now:      end.Add(15*time.Minute + time.Second),
			expected: models.AttendanceAbsent,
		},
		{
			name: "check-in exactly at the grace boundary is on time",
			attendance: &models.Attendance{
				CheckInAt:  timePtr(start.Add(15 * time.Minute)),
				CheckOutAt: timePtr(end),
			},
			now:      end.Add(time.Hour),
			expected: models.AttendancePresent,
		},
		{
			name: "check-in past the grace boundary is a late arrival",
			attendance: &models.Attendance{
				CheckInAt:  timePtr(start.Add(16 * time.Minute)),
				CheckOutAt: timePtr(end),
			},
			now:      end.Add(time.Hour),
			expected: models.AttendanceLateArrival,
		},
		{
			name: "check-out past the grace window before the end is left early",
			attendance: &models.Attendance{
				CheckInAt:  timePtr(start),
				CheckOutAt: timePtr(end.Add(-16 * time.Minute)),
			},
			now:      end.Add(time.Hour),
			expected: models.AttendanceLeftEarly,
		},
		{
			name: "check-out just inside the grace window before the end is present",
			attendance: &models.Attendance{
				CheckInAt:  timePtr(start),
				CheckOutAt: timePtr(end.Add(-15 * time.Minute)),
			},
			now:      end.Add(time.Hour),
			expected: models.AttendancePresent,
		},
		{
			name: "check-out well past the shift end is left late",
			attendance: &models.Attendance{
				CheckInAt:  timePtr(start),
				CheckOutAt: timePtr(end.Add(16 * time.Minute)),
			},
			now:      end.Add(time.Hour),
			expected: models.AttendanceLeftLate,
		},
		{
			name: "check-out inside the late threshold is present",
			attendance: &models.Attendance{
				CheckInAt:  timePtr(start),
				CheckOutAt: timePtr(end.Add(15 * time.Minute)),
			},
			now:      end.Add(time.Hour),
			expected: models.AttendancePresent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DeriveStatus(tc.attendance, schedule, tc.now, loc))
		})
	}

	t.Run("schedule without slots is invalid", func(t *testing.T) {
		empty := &models.WorkSchedule{Date: "2025-03-10"}
		attendance := &models.Attendance{CheckInAt: timePtr(start)}
		assert.Equal(t, models.AttendanceInvalid, DeriveStatus(attendance, empty, start, loc))
	})

	t.Run("unparsable slot bounds are invalid", func(t *testing.T) {
		broken := &models.WorkSchedule{
			Date:      "2025-03-10",
			TimeSlots: []models.TimeSlot{{StartTime: "eight", EndTime: "noon"}},
		}
		attendance := &models.Attendance{CheckInAt: timePtr(start)}
		assert.Equal(t, models.AttendanceInvalid, DeriveStatus(attendance, broken, start, loc))
	})
}
