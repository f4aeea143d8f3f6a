package constvars

// Client-facing error messages. The Vietnamese-language fallbacks mirror the
// messages the frontend shows when the server gives no more specific one.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in or your session has expired"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"

	ErrClientAppointmentNotFound       = "Appointment not found"
	ErrClientIllegalStatusTransition   = "The requested status change is not allowed"
	ErrClientAppointmentMissingDoctor  = "Appointment must have a doctor and department before queueing"
	ErrClientAppointmentMissingRoom    = "Appointment must have an assigned room before queueing"
	ErrClientQueueBusy                 = "The queue is busy, please try again"
	ErrClientRecordNotFound            = "Medical record not found"
	ErrClientRecordFieldNotEditable    = "One or more fields cannot be edited in the record's current state"
	ErrClientRecordDone                = "A completed medical record cannot be modified"
	ErrClientMedicineNotFound          = "Medicine not found"
	ErrClientMedicineInactive          = "This medicine has been disabled and cannot be used"
	ErrClientInsufficientStock         = "Insufficient medicine stock"
	ErrClientMedicineCheckNotFound     = "Medicine check not found"
	ErrClientMedicineCheckNoItems      = "no items to complete"
	ErrClientMedicineCheckCompleted    = "A completed medicine check cannot be modified"
	ErrClientMedicineCheckDetailExists = "This batch is already listed on the check"
	ErrClientMedicineCheckNoDetail     = "Batch not found on this check"
	ErrClientMedicineCheckNotComplete  = "The medicine check must be completed first"
	ErrClientMedicineCheckBusy         = "The medicine check is being processed, please try again"
	ErrClientScheduleNotFound          = "Work schedule not found"
	ErrClientAttendanceNotFound        = "No check-in found for this schedule"
	ErrClientAlreadyCheckedIn          = "Already checked in for this schedule"
	ErrClientAlreadyCheckedOut         = "Already checked out for this schedule"
	ErrClientPatientNotFound           = "Patient profile not found"
	ErrClientPatientAlreadyExists      = "A patient with this identity number already exists"
)

// Developer-facing error messages, logged but hidden from production clients.
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevURLParamIDValidationFailed = "invalid URL parameter: %s"
	ErrDevCannotParseJSON            = "failed to parse JSON payload"
	ErrDevCannotParseDate            = "failed to parse date value"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevMissingRequestID           = "request ID not found in request context"
	ErrDevMissingSessionData         = "session data not found in request context"
	ErrDevAuthTokenMissing           = "authorization token missing from request"
	ErrDevAuthTokenInvalidOrExpired  = "authorization token invalid or expired"
	ErrDevRoleNotPermitted           = "session role is not permitted on this route"

	ErrDevDBFailedToFindDocument     = "mongodb: failed to find document"
	ErrDevDBFailedToInsertDocument   = "mongodb: failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "mongodb: failed to update document"
	ErrDevDBFailedToDeleteDocument   = "mongodb: failed to delete document"
	ErrDevDBFailedToCountDocuments   = "mongodb: failed to count documents"
	ErrDevDBFailedToIterateDocuments = "mongodb: failed to iterate documents"
	ErrDevDBStringNotObjectID        = "mongodb: string is not a valid ObjectID"

	ErrDevRedisSet           = "redis: failed to set key"
	ErrDevRedisGet           = "redis: failed to get key %s"
	ErrDevRedisDelete        = "redis: failed to delete key"
	ErrDevRedisIncrement     = "redis: failed to increment key"
	ErrDevRedisSetNX         = "redis: failed to setnx key"
	ErrDevRedisUnlock        = "redis: failed to release lock"
	ErrDevLockNotAcquired    = "lock could not be acquired for key %s"
	ErrDevSMTPSendEmail      = "smtp: failed to send email via %s"
	ErrDevRabbitMQPublish    = "rabbitmq: failed to publish message"
	ErrDevIllegalTransition  = "illegal appointment status transition from %s to %s"
	ErrDevRecordImmutable    = "medical record %s is immutable in status %s"
	ErrDevCheckAlreadyClosed = "medicine check %s already completed"
)
