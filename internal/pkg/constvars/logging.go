package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingSessionDataKey    = "session_data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingResponseCountKey  = "response_count"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingAppointmentIDKey     = "appointment_id"
	LoggingAppointmentStatusKey = "appointment_status"
	LoggingTargetStatusKey      = "target_status"
	LoggingQueueRoomKey         = "queue_room"
	LoggingQueueDateKey         = "queue_date"
	LoggingQueuePositionKey     = "queue_position"
	LoggingRecordIDKey          = "record_id"
	LoggingRecordStatusKey      = "record_status"
	LoggingMedicineIDKey        = "medicine_id"
	LoggingMedicineCheckIDKey   = "medicine_check_id"
	LoggingCheckCodeKey         = "check_code"
	LoggingPatientIDKey         = "patient_id"
	LoggingDoctorIDKey          = "doctor_id"
	LoggingEmployeeIDKey        = "employee_id"
	LoggingScheduleIDKey        = "schedule_id"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
)
