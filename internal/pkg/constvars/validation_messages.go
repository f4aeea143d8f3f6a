package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"email":           "must be a valid email",
	"alphanum":        "must contain only alphanumeric characters",
	"min":             "must be at least %s",
	"max":             "must be at most %s",
	"len":             "must be %s characters long",
	"numeric":         "must be a number",
	"oneof":           "must be one of [%s]",
	"gt":              "must be greater than %s",
	"gte":             "must be greater than or equal to %s",
	"lt":              "must be less than %s",
	"lte":             "must be less than or equal to %s",
	"datetime":        "must match the date format %s",
	"identity_number": "must be a valid 9 or 12 digit identity number",
	"bhyt_code":       "must be a valid BHYT insurance code",
	"phone_number":    "must be a valid Vietnamese phone number",
}

var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"len":      true,
	"oneof":    true,
	"gt":       true,
	"gte":      true,
	"lt":       true,
	"lte":      true,
	"datetime": true,
}
