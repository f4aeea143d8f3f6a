package models

type PatientProfile struct {
	ID             string `json:"id" bson:"_id,omitempty"`
	FullName       string `json:"fullName" bson:"fullName"`
	DateOfBirth    string `json:"dateOfBirth" bson:"dateOfBirth"`
	Gender         string `json:"gender" bson:"gender"`
	Address        string `json:"address" bson:"address,omitempty"`
	IdentityNumber string `json:"identityNumber" bson:"identityNumber"`
	BHYTCode       string `json:"bhytCode" bson:"bhytCode,omitempty"`
	PhoneNumber    string `json:"phoneNumber" bson:"phoneNumber,omitempty"`
	Email          string `json:"email" bson:"email,omitempty"`
	TimeModel      `bson:",inline"`
}
