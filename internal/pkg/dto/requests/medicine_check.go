package requests

type CreateMedicineCheckRequest struct {
	SupplierName  string `json:"supplierName" validate:"required"`
	InvoiceNumber string `json:"invoiceNumber" validate:"required"`
	CheckDate     string `json:"checkDate"`
}

type MedicineCheckDetailRequest struct {
	MedicineCode     string  `json:"medicineCode" validate:"required"`
	MedicineName     string  `json:"medicineName" validate:"required"`
	BatchNumber      string  `json:"batchNumber" validate:"required"`
	ExpirationDate   string  `json:"expirationDate" validate:"required"`
	DeclaredQuantity int     `json:"declaredQuantity" validate:"required,gte=0"`
	ActualQuantity   int     `json:"actualQuantity" validate:"gte=0"`
	Unit             string  `json:"unit"`
	ImportPrice      float64 `json:"importPrice" validate:"required,gt=0"`
	Note             string  `json:"note"`
}

type PromoteCheckDetailsRequest struct {
	BatchNumbers []string `json:"batchNumbers" validate:"required,min=1"`
}
