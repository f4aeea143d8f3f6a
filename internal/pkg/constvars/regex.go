package constvars

const (
	RegexNumeric         = `^\d+$`
	RegexDateYYYYMMDD    = `^\d{4}-\d{2}-\d{2}$`
	RegexTimeHHMM        = `^\d{2}:\d{2}$`
	RegexDateTimeISO8601 = `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})$`
	RegexIPv4            = `^(?:[0-9]{1,3}\.){3}[0-9]{1,3}$`

	// CCCD is the 12-digit national identity number; CMND, its 9-digit
	// predecessor, is still accepted as a patient lookup key.
	RegexIdentityNumber = `^(\d{9}|\d{12})$`
	// BHYT insurance codes: two letters, one digit, two letters/digits and a
	// 10-digit serial, e.g. DN4010123456789.
	RegexBHYTCode           = `^[A-Z]{2}[1-9][0-9A-Z]{2}[0-9]{10}$`
	RegexVietnamPhoneNumber = `^(?:\+84|84|0)(3|5|7|8|9)[0-9]{8}$`
)
