package requests

type CreateMedicineRequest struct {
	Code             string  `json:"code" validate:"required"`
	Name             string  `json:"name" validate:"required"`
	Type             string  `json:"type"`
	Ingredient       string  `json:"ingredient"`
	Dosage           string  `json:"dosage"`
	Contraindication string  `json:"contraindication"`
	SideEffect       string  `json:"sideEffect"`
	Quantity         int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice        float64 `json:"unitPrice" validate:"required,gt=0"`
	Unit             string  `json:"unit"`
	ExpirationDate   string  `json:"expirationDate" validate:"required"`
	SupplierName     string  `json:"supplierName"`
}

type UpdateMedicineRequest struct {
	Name             *string  `json:"name,omitempty"`
	Type             *string  `json:"type,omitempty"`
	Ingredient       *string  `json:"ingredient,omitempty"`
	Dosage           *string  `json:"dosage,omitempty"`
	Contraindication *string  `json:"contraindication,omitempty"`
	SideEffect       *string  `json:"sideEffect,omitempty"`
	Quantity         *int     `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	UnitPrice        *float64 `json:"unitPrice,omitempty" validate:"omitempty,gt=0"`
	Unit             *string  `json:"unit,omitempty"`
	ExpirationDate   *string  `json:"expirationDate,omitempty"`
	SupplierName     *string  `json:"supplierName,omitempty"`
}

type DisableMedicineRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type DispenseMedicineRequest struct {
	MedicineID string `json:"medicineId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}
