package models

import "time"

// CheckStatus values keep the Vietnamese labels the pharmacy staff see on the
// printed "phiếu kiểm".
type CheckStatus string

const (
	CheckNotChecked  CheckStatus = "Chưa kiểm"
	CheckChecked     CheckStatus = "Đã kiểm"
	CheckDiscrepancy CheckStatus = "Có sai lệch"
)

type MedicineCheckDetail struct {
	MedicineCode     string    `json:"medicineCode" bson:"medicineCode"`
	MedicineName     string    `json:"medicineName" bson:"medicineName"`
	BatchNumber      string    `json:"batchNumber" bson:"batchNumber"`
	ExpirationDate   time.Time `json:"expirationDate" bson:"expirationDate"`
	DeclaredQuantity int       `json:"declaredQuantity" bson:"declaredQuantity"`
	ActualQuantity   int       `json:"actualQuantity" bson:"actualQuantity"`
	Unit             string    `json:"unit" bson:"unit,omitempty"`
	ImportPrice      float64   `json:"importPrice" bson:"importPrice"`
	Note             string    `json:"note" bson:"note,omitempty"`

	// Derived at completion time.
	Discrepancy    int  `json:"discrepancy" bson:"discrepancy"`
	HasDiscrepancy bool `json:"hasDiscrepancy" bson:"hasDiscrepancy"`
}

type MedicineCheck struct {
	ID            string                `json:"id" bson:"_id,omitempty"`
	CheckCode     string                `json:"checkCode" bson:"checkCode"`
	SupplierName  string                `json:"supplierName" bson:"supplierName"`
	InvoiceNumber string                `json:"invoiceNumber" bson:"invoiceNumber"`
	CheckDate     time.Time             `json:"checkDate" bson:"checkDate"`
	Status        CheckStatus           `json:"status" bson:"status"`
	InspectorID   string                `json:"inspectorId" bson:"inspectorId"`
	Details       []MedicineCheckDetail `json:"details" bson:"details"`
	TimeModel     `bson:",inline"`
}

func (c *MedicineCheck) IsCompleted() bool {
	return c.Status != CheckNotChecked
}
