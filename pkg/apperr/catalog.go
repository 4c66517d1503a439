package apperr

import "net/http"

// Kind identifies one failure condition from the closed catalog.
type Kind int

const (
	// Validation
	KindIDRequired Kind = iota
	KindIDInvalid
	KindIDInvalidFormat
	KindNameRequired
	KindEmailRequired
	KindPasswordRequired
	KindInvalidNameLength
	KindInvalidNameFormat
	KindInvalidEmailFormat
	KindEmailTooLong
	KindEmailDomainMissing
	KindEmailDomainInvalid
	KindEmailDomainInvalidFormat
	KindLocalPartInvalid
	KindPasswordTooShort
	KindPasswordNoUppercase
	KindPasswordNoLowercase
	KindPasswordNoNumber
	KindPasswordNoSpecialChar

	// Authentication
	KindInvalidCredentials
	KindAccountLocked
	KindNoTokenProvided
	KindInvalidTokenPayload
	KindInvalidOrExpiredToken
	KindInvalidSecretKey

	// Repository
	KindUserSaveFailed
	KindQueryFailed
	KindUserUpdateFailed
	KindUserDeleteFailed

	// Permission
	KindUnauthorized
	KindForbidden

	// Service
	KindUserAlreadyExists
	KindInvalidUserStatus
	KindInsufficientPrivileges
	KindUserNotFound

	// Server
	KindInternalError
	KindDatabaseConnectionFailed
	KindSQLQueryFailed
)

type entry struct {
	Message    string
	StatusCode int
	Name       string
}

// catalog is the single source of truth for message, status, and name.
// ACCOUNT_LOCKED and the permission kinds are defined but unused by the
// current flows; they stay in the table so the taxonomy remains closed.
var catalog = map[Kind]entry{
	KindIDRequired:               {"User ID is required", http.StatusBadRequest, "ID_REQUIRED"},
	KindIDInvalid:                {"User ID is invalid", http.StatusBadRequest, "ID_INVALID"},
	KindIDInvalidFormat:          {"User ID format is invalid", http.StatusBadRequest, "ID_INVALID_FORMAT"},
	KindNameRequired:             {"Name is required", http.StatusBadRequest, "NAME_REQUIRED"},
	KindEmailRequired:            {"Email is required", http.StatusBadRequest, "EMAIL_REQUIRED"},
	KindPasswordRequired:         {"Password is required", http.StatusBadRequest, "PASSWORD_REQUIRED"},
	KindInvalidNameLength:        {"Name must be 3-50 characters", http.StatusBadRequest, "INVALID_NAME_LENGTH"},
	KindInvalidNameFormat:        {"Name must only contain letters and spaces", http.StatusBadRequest, "INVALID_NAME_FORMAT"},
	KindInvalidEmailFormat:       {"Invalid email format", http.StatusBadRequest, "INVALID_EMAIL_FORMAT"},
	KindEmailTooLong:             {"Email exceeds 254 characters", http.StatusBadRequest, "EMAIL_TOO_LONG"},
	KindEmailDomainMissing:       {"Email domain is missing", http.StatusBadRequest, "EMAIL_DOMAIN_MISSING"},
	KindEmailDomainInvalid:       {"Invalid email domain", http.StatusBadRequest, "EMAIL_DOMAIN_INVALID"},
	KindEmailDomainInvalidFormat: {"Email domain can't start or end with a period", http.StatusBadRequest, "EMAIL_DOMAIN_INVALID_FORMAT"},
	KindLocalPartInvalid:         {"Email local part has invalid characters", http.StatusBadRequest, "LOCAL_PART_INVALID"},
	KindPasswordTooShort:         {"Password must be at least 8 characters", http.StatusBadRequest, "PASSWORD_TOO_SHORT"},
	KindPasswordNoUppercase:      {"Password needs an uppercase letter", http.StatusBadRequest, "PASSWORD_NO_UPPERCASE"},
	KindPasswordNoLowercase:      {"Password needs a lowercase letter", http.StatusBadRequest, "PASSWORD_NO_LOWERCASE"},
	KindPasswordNoNumber:         {"Password needs a number", http.StatusBadRequest, "PASSWORD_NO_NUMBER"},
	KindPasswordNoSpecialChar:    {"Password needs a special character", http.StatusBadRequest, "PASSWORD_NO_SPECIAL_CHAR"},

	KindInvalidCredentials:    {"Invalid credentials", http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	KindAccountLocked:         {"Account locked, contact support", http.StatusLocked, "ACCOUNT_LOCKED"},
	KindNoTokenProvided:       {"Access denied. No authentication token provided.", http.StatusUnauthorized, "NO_TOKEN_PROVIDED"},
	KindInvalidTokenPayload:   {"Invalid token payload.", http.StatusUnauthorized, "INVALID_TOKEN_PAYLOAD"},
	KindInvalidOrExpiredToken: {"Invalid or expired token.", http.StatusUnauthorized, "INVALID_OR_EXPIRED_TOKEN"},
	KindInvalidSecretKey:      {"JWT_SECRET_KEY is not defined in the environment variables.", http.StatusInternalServerError, "INVALID_SECRET_KEY"},

	KindUserSaveFailed:   {"Failed to save user", http.StatusInternalServerError, "USER_SAVE_FAILED"},
	KindQueryFailed:      {"Database query failed", http.StatusInternalServerError, "QUERY_FAILED"},
	KindUserUpdateFailed: {"Failed to update user", http.StatusInternalServerError, "USER_UPDATE_FAILED"},
	KindUserDeleteFailed: {"Failed to delete user", http.StatusInternalServerError, "USER_DELETE_FAILED"},

	KindUnauthorized: {"Unauthorized action", http.StatusForbidden, "UNAUTHORIZED"},
	KindForbidden:    {"Action forbidden", http.StatusForbidden, "FORBIDDEN"},

	KindUserAlreadyExists:      {"User already exists", http.StatusConflict, "USER_ALREADY_EXISTS"},
	KindInvalidUserStatus:      {"Invalid user status", http.StatusBadRequest, "INVALID_USER_STATUS"},
	KindInsufficientPrivileges: {"Insufficient privileges", http.StatusForbidden, "INSUFFICIENT_PRIVILEGES"},
	KindUserNotFound:           {"User not found", http.StatusNotFound, "USER_NOT_FOUND"},

	KindInternalError:            {"Internal server error", http.StatusInternalServerError, "INTERNAL_ERROR"},
	KindDatabaseConnectionFailed: {"Database connection failed", http.StatusInternalServerError, "DATABASE_CONNECTION_FAILED"},
	KindSQLQueryFailed:           {"SQL query error", http.StatusInternalServerError, "SQL_QUERY_FAILED"},
}
