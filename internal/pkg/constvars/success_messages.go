package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Appointment messages
	GetAppointmentSuccessMessage    = "get appointments successfully"
	CreateAppointmentSuccessMessage = "appointment created successfully"
	UpdateAppointmentSuccessMessage = "appointment status updated successfully"
	PushToQueueSuccessMessage       = "appointment pushed to queue successfully"
	GetQueueSuccessMessage          = "get queue entries successfully"

	// Medical record messages
	GetRecordSuccessMessage      = "get medical records successfully"
	CreateRecordSuccessMessage   = "medical record created successfully"
	UpdateRecordSuccessMessage   = "medical record updated successfully"
	CompleteRecordSuccessMessage = "medical record completed successfully"

	// Medicine messages
	GetMedicineSuccessMessage      = "get medicines successfully"
	CreateMedicineSuccessMessage   = "medicine created successfully"
	UpdateMedicineSuccessMessage   = "medicine updated successfully"
	DisableMedicineSuccessMessage  = "medicine disabled successfully"
	DispenseMedicineSuccessMessage = "medicine dispensed successfully"

	// Medicine check messages
	GetMedicineCheckSuccessMessage      = "get medicine checks successfully"
	CreateMedicineCheckSuccessMessage   = "medicine check created successfully"
	AddCheckDetailSuccessMessage        = "medicine check detail added successfully"
	UpdateCheckDetailSuccessMessage     = "medicine check detail updated successfully"
	CompleteMedicineCheckSuccessMessage = "medicine check completed successfully"
	PromoteMedicineCheckSuccessMessage  = "medicine check details promoted to inventory successfully"

	// Attendance messages
	CheckInSuccessMessage       = "checked in successfully"
	CheckOutSuccessMessage      = "checked out successfully"
	GetAttendanceSuccessMessage = "get attendance records successfully"

	// Work schedule messages
	GetScheduleSuccessMessage    = "get work schedules successfully"
	CreateScheduleSuccessMessage = "work schedule created successfully"

	// Patient messages
	GetPatientSuccessMessage    = "get patient profiles successfully"
	CreatePatientSuccessMessage = "patient profile created successfully"
)
