package utils

import "time"

const (
	DateLayoutYYYYMMDD = "2006-01-02"
	TimeLayoutHHMM     = "15:04"
)

func ParseDateYYYYMMDD(value string) (time.Time, error) {
	return time.Parse(DateLayoutYYYYMMDD, value)
}

// SlotBounds combines a schedule date with the slot's wall-clock bounds in the
// given location.
func SlotBounds(date, startTime, endTime string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(DateLayoutYYYYMMDD+" "+TimeLayoutHHMM, date+" "+startTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.ParseInLocation(DateLayoutYYYYMMDD+" "+TimeLayoutHHMM, date+" "+endTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
