package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserInactive        = errors.New("user is inactive")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrSubmissionFailed    = errors.New("application record could not be created")
	ErrInvalidTravelDate   = errors.New("travel date is before the earliest processable date")
	ErrInvalidDateRange    = errors.New("end date is before start date")
	ErrTooManyPeople       = errors.New("number of travelers exceeds package capacity")
	ErrInvalidStatus       = errors.New("invalid application status")
	ErrObjectExists        = errors.New("object already exists at storage path")
)
