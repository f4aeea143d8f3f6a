package requests

type CreatePatientRequest struct {
	FullName       string `json:"fullName" validate:"required"`
	DateOfBirth    string `json:"dateOfBirth" validate:"required"`
	Gender         string `json:"gender" validate:"required,oneof=male female other"`
	Address        string `json:"address"`
	IdentityNumber string `json:"identityNumber" validate:"required,identity_number"`
	BHYTCode       string `json:"bhytCode" validate:"omitempty,bhyt_code"`
	PhoneNumber    string `json:"phoneNumber" validate:"omitempty,phone_number"`
	Email          string `json:"email" validate:"omitempty,email"`
}
