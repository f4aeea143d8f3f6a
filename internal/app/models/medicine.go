package models

import "time"

type Medicine struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	Code             string    `json:"code" bson:"code"`
	Name             string    `json:"name" bson:"name"`
	Type             string    `json:"type" bson:"type,omitempty"`
	Ingredient       string    `json:"ingredient" bson:"ingredient,omitempty"`
	Dosage           string    `json:"dosage" bson:"dosage,omitempty"`
	Contraindication string    `json:"contraindication" bson:"contraindication,omitempty"`
	SideEffect       string    `json:"sideEffect" bson:"sideEffect,omitempty"`
	Quantity         int       `json:"quantity" bson:"quantity"`
	UnitPrice        float64   `json:"unitPrice" bson:"unitPrice"`
	Unit             string    `json:"unit" bson:"unit,omitempty"`
	ExpirationDate   time.Time `json:"expirationDate" bson:"expirationDate"`
	SupplierName     string    `json:"supplierName" bson:"supplierName,omitempty"`

	// Medicines are never hard-deleted; disabling records the reason.
	IsActive      bool   `json:"isActive" bson:"isActive"`
	DisableReason string `json:"disableReason" bson:"disableReason,omitempty"`

	TimeModel `bson:",inline"`
}
