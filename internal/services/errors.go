package services

import "errors"

// Sentinel errors the handlers translate into HTTP statuses. Ownership
// misses deliberately surface as the same not-found error as true misses so
// non-owners cannot probe for existence.
var (
	ErrEmailTaken         = errors.New("User with this email already exists")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrUserNotFound       = errors.New("User not found")

	ErrJobNotFound = errors.New("Job not found or unauthorized")
	ErrJobClosed   = errors.New("This job is no longer accepting applications")

	ErrAlreadyApplied      = errors.New("You have already applied for this job")
	ErrApplicationNotFound = errors.New("Application not found")
	ErrSeekerOnly          = errors.New("Only job seekers can apply for jobs")
	ErrNotAllowed          = errors.New("You are not allowed to modify this application")
	ErrBadTransition       = errors.New("Invalid status transition")
)
