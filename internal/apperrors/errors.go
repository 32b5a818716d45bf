package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the acting user's role is insufficient for the requested mutation.
var ErrForbidden = errors.New("permission denied")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrProtectedRole indicates an attempt to delete a user whose role is protected.
var ErrProtectedRole = errors.New("protected role cannot be deleted")

// ErrSyncFailure indicates that a remote sync call did not report success.
var ErrSyncFailure = errors.New("remote sync failed")

// ErrSyncInProgress indicates a sync was requested while another one is still running.
var ErrSyncInProgress = errors.New("sync already in progress")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
