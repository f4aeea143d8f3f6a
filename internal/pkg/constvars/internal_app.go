package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HSPCR_SVC_"
)

const (
	MongoCollectionAppointments    = "appointments"
	MongoCollectionQueueEntries    = "queue_entries"
	MongoCollectionMedicalRecords  = "medical_records"
	MongoCollectionMedicines       = "medicines"
	MongoCollectionMedicineChecks  = "medicine_checks"
	MongoCollectionAttendances     = "attendances"
	MongoCollectionWorkSchedules   = "work_schedules"
	MongoCollectionPatientProfiles = "patient_profiles"
)

const (
	RoleReceptionist = "receptionist"
	RoleDoctor       = "doctor"
	RolePharmacist   = "pharmacist"
	RoleAccountant   = "accountant"
	RoleAdmin        = "admin"
	RolePatient      = "patient"
)

const (
	QueueLockKeyFormat         = "queue-lock:%s:%s"
	MedicineCheckLockKeyFormat = "medicine-check-lock:%s"
	QueueLockExpirySeconds     = 10
	QueueLockRetryCount        = 5
	QueueLockRetryDelayMs      = 100
)

const (
	MedicineCheckCodeFormat = "MC-%s-%s"
	AppPaginationUrlFormat  = "%s?page=%d&page_size=%d"
)

const (
	AttendanceGraceMinutes    = 15
	AttendanceLeftLateMinutes = 15
	AttendanceUnknownIP       = "unknown"
)
