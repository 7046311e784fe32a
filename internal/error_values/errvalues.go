package errorvalues

import "errors"

var (
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong user id or secret")
	ErrInvalidToken     = errors.New("invalid token")
	ErrOwnerNotFound    = errors.New("pet owner doesn't exists")
	ErrPetNotFound      = errors.New("no pet found")
	ErrInvalidTimeRange = errors.New("time range is not one of the supported values")
	ErrInvalidPet       = errors.New("invalid pet data")
)

// Dashboard sync taxonomy. The refresh flow never returns these to callers
// directly; they are recorded in the refresh result.
var (
	ErrBackendUnavailable    = errors.New("backend unavailable")
	ErrMissingOwnerIdentity  = errors.New("no owner identity could be resolved")
	ErrSeedDependencyFailure = errors.New("seed dependency failed")
	ErrRefreshInFlight       = errors.New("refresh already in progress")
	ErrStoreClosed           = errors.New("dashboard store is closed")
)
