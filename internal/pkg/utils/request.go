package utils

import (
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"net"
	"net/http"
	"strconv"
	"strings"
)

func BuildQueryParamsRequest(r *http.Request) *requests.QueryParams {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(query.Get("page_size"))
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return &requests.QueryParams{
		Page:             page,
		PageSize:         pageSize,
		Status:           query.Get("status"),
		Date:             query.Get("date"),
		Room:             query.Get("room"),
		PatientProfileID: query.Get("patient_profile_id"),
		DoctorID:         query.Get("doctor_id"),
		EmployeeID:       query.Get("employee_id"),
		StartDate:        query.Get("start_date"),
		EndDate:          query.Get("end_date"),
	}
}

// ClientIP resolves the caller's address from proxy headers first; it never
// fails, falling back to "unknown".
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constvars.HeaderXForwardedFor); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		ip := strings.TrimSpace(parts[0])
		if ip != "" {
			return ip
		}
	}
	if realIP := r.Header.Get(constvars.HeaderXRealIP); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return constvars.AttendanceUnknownIP
	}
	return host
}
