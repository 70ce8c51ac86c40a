package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInternalServer = errors.New("internal server error")
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Account errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountRejected     = errors.New("admin account has been rejected")
	ErrAccountNotApproved  = errors.New("admin account not approved yet")
	ErrDecisionAlreadyMade = errors.New("admin request already decided")
	ErrInvalidDecision     = errors.New("invalid approval decision")
)

// Record errors
var (
	ErrResidentNotFound     = errors.New("resident not found")
	ErrComplaintNotFound    = errors.New("complaint not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)
