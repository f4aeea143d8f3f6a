package requests

type QueryParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Status   string `json:"status"`
	Date     string `json:"date"`
	Room     string `json:"room"`

	PatientProfileID string `json:"patient_profile_id"`
	DoctorID         string `json:"doctor_id"`
	EmployeeID       string `json:"employee_id"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
