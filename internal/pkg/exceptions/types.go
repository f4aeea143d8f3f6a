package exceptions

import (
	"fmt"
	"hospicare-service/internal/pkg/constvars"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDate)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrMissingSessionData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevMissingSessionData)
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrRoleNotPermitted = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevRoleNotPermitted)
	}

	// Appointment lifecycle
	ErrAppointmentNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAppointmentNotFound, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrIllegalStatusTransition = func(from, to string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientIllegalStatusTransition, fmt.Sprintf(constvars.ErrDevIllegalTransition, from, to))
	}
	ErrAppointmentMissingDoctor = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientAppointmentMissingDoctor, constvars.ErrClientAppointmentMissingDoctor)
	}
	ErrAppointmentMissingRoom = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientAppointmentMissingRoom, constvars.ErrClientAppointmentMissingRoom)
	}
	ErrQueueBusy = func(key string) *CustomError {
		return WrapWithoutError(constvars.StatusConflict, constvars.ErrClientQueueBusy, fmt.Sprintf(constvars.ErrDevLockNotAcquired, key))
	}

	// Medical record
	ErrRecordNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientRecordNotFound, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrRecordFieldNotEditable = func(field string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientRecordFieldNotEditable, fmt.Sprintf("field %q is not editable in the record's current status", field))
	}
	ErrRecordImmutable = func(recordID, status string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientRecordDone, fmt.Sprintf(constvars.ErrDevRecordImmutable, recordID, status))
	}

	// Medicine inventory
	ErrMedicineNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientMedicineNotFound, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMedicineInactive = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientMedicineInactive, constvars.ErrClientMedicineInactive)
	}
	ErrInsufficientStock = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientInsufficientStock, constvars.ErrClientInsufficientStock)
	}

	// Medicine check
	ErrMedicineCheckNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientMedicineCheckNotFound, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMedicineCheckNoItems = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientMedicineCheckNoItems, constvars.ErrClientMedicineCheckNoItems)
	}
	ErrMedicineCheckCompleted = func(checkID string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientMedicineCheckCompleted, fmt.Sprintf(constvars.ErrDevCheckAlreadyClosed, checkID))
	}
	ErrMedicineCheckDetailExists = func(batchNumber string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientMedicineCheckDetailExists, fmt.Sprintf("batch %q already present on check", batchNumber))
	}
	ErrMedicineCheckDetailNotFound = func(batchNumber string) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientMedicineCheckNoDetail, fmt.Sprintf("batch %q not present on check", batchNumber))
	}
	ErrMedicineCheckNotCompleted = func(checkID string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientMedicineCheckNotComplete, fmt.Sprintf("medicine check %s has not been completed", checkID))
	}
	ErrMedicineCheckBusy = func(key string) *CustomError {
		return WrapWithoutError(constvars.StatusConflict, constvars.ErrClientMedicineCheckBusy, fmt.Sprintf(constvars.ErrDevLockNotAcquired, key))
	}

	// Attendance / schedule
	ErrScheduleNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientScheduleNotFound, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrAttendanceNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAttendanceNotFound, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrAlreadyCheckedIn = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientAlreadyCheckedIn, constvars.ErrClientAlreadyCheckedIn)
	}
	ErrAlreadyCheckedOut = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientAlreadyCheckedOut, constvars.ErrClientAlreadyCheckedOut)
	}

	// Patient
	ErrPatientNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrPatientAlreadyExists = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientPatientAlreadyExists, constvars.ErrClientPatientAlreadyExists)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBCountDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToCountDocuments)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBStringNotObjectID)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGetNoData = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
	ErrRedisIncrement = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrement)
	}
	ErrRedisSetNX = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetNX)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// Messaging
	ErrSMTPSendEmail = func(err error, host string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevSMTPSendEmail, host))
	}
	ErrRabbitMQPublish = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQPublish)
	}
)
