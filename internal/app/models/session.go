package models

type Session struct {
	SessionID  string `json:"session_id"`
	UserID     string `json:"user_id"`
	Role       string `json:"role"`
	EmployeeID string `json:"employee_id,omitempty"`
	PatientID  string `json:"patient_id,omitempty"`
	Email      string `json:"email,omitempty"`
}

func (s *Session) IsReceptionist() bool { return s.Role == "receptionist" }
func (s *Session) IsDoctor() bool       { return s.Role == "doctor" }
func (s *Session) IsPharmacist() bool   { return s.Role == "pharmacist" }
func (s *Session) IsAccountant() bool   { return s.Role == "accountant" }
func (s *Session) IsAdmin() bool        { return s.Role == "admin" }
func (s *Session) IsPatient() bool      { return s.Role == "patient" }
